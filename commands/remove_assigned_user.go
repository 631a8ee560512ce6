package commands

import (
	"context"
	"fmt"
)

type RemoveAssignedUserCommand struct {
	UserID      int64 `json:"user_id" form:"user_id"`
	PlanID      int64 `json:"plan_id" form:"plan_id"`
	ProcedureID int64 `json:"procedure_id" form:"procedure_id"`
}

// RemoveAssignedUser deletes one assignment. Unlike AssignUser it is not
// idempotent: removing an assignment that does not exist is NotFound.
func (s *Service) RemoveAssignedUser(ctx context.Context, cmd RemoveAssignedUserCommand) ApiResponse[Unit] {
	log := s.log.With("user_id", cmd.UserID, "plan_id", cmd.PlanID, "procedure_id", cmd.ProcedureID)

	if err := validateIDs(
		idField{"plan_id", cmd.PlanID},
		idField{"procedure_id", cmd.ProcedureID},
		idField{"user_id", cmd.UserID},
	); err != nil {
		log.Warn("remove assigned user rejected", "error", err)
		return Fail[Unit](err)
	}

	row, found, err := s.store.FindAssignedUser(cmd.UserID, cmd.PlanID, cmd.ProcedureID)
	if err != nil {
		err = fmt.Errorf("find assigned user: %w", err)
		log.Error("remove assigned user lookup failed", "error", err)
		return Fail[Unit](err)
	}
	if !found {
		return Fail[Unit](notFound("user %d is not assigned to plan %d procedure %d",
			cmd.UserID, cmd.PlanID, cmd.ProcedureID))
	}

	s.store.Remove(&row)
	if err := s.store.SaveChanges(ctx); err != nil {
		err = fmt.Errorf("remove assigned user: %w", err)
		log.Error("remove assigned user save failed", "error", err)
		return Fail[Unit](err)
	}

	log.Info("assigned user removed")
	return Succeed(Unit{})
}
