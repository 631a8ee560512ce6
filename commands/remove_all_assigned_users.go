package commands

import (
	"context"
	"fmt"
)

type RemoveAllAssignedUsersCommand struct {
	PlanID      int64 `json:"plan_id" form:"plan_id"`
	ProcedureID int64 `json:"procedure_id" form:"procedure_id"`
}

// RemoveAllAssignedUsers clears every assignment of a plan procedure. An
// already empty plan procedure is a success.
func (s *Service) RemoveAllAssignedUsers(ctx context.Context, cmd RemoveAllAssignedUsersCommand) ApiResponse[Unit] {
	log := s.log.With("plan_id", cmd.PlanID, "procedure_id", cmd.ProcedureID)

	if err := validateIDs(
		idField{"plan_id", cmd.PlanID},
		idField{"procedure_id", cmd.ProcedureID},
	); err != nil {
		log.Warn("remove all assigned users rejected", "error", err)
		return Fail[Unit](err)
	}

	rows, err := s.store.FindAssignedUsers(cmd.PlanID, cmd.ProcedureID)
	if err != nil {
		err = fmt.Errorf("find assigned users: %w", err)
		log.Error("remove all assigned users lookup failed", "error", err)
		return Fail[Unit](err)
	}

	values := make([]interface{}, 0, len(rows))
	for i := range rows {
		values = append(values, &rows[i])
	}
	s.store.RemoveRange(values...)
	if err := s.store.SaveChanges(ctx); err != nil {
		err = fmt.Errorf("remove assigned users: %w", err)
		log.Error("remove all assigned users save failed", "error", err)
		return Fail[Unit](err)
	}

	log.Info("assigned users removed", "count", len(rows))
	return Succeed(Unit{})
}
