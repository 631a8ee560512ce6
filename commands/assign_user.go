package commands

import (
	"context"
	"errors"
	"fmt"

	"planroster/models"
)

type AssignUserCommand struct {
	UserID      int64 `json:"user_id" form:"user_id"`
	PlanID      int64 `json:"plan_id" form:"plan_id"`
	ProcedureID int64 `json:"procedure_id" form:"procedure_id"`
}

// AssignUser attaches a user to a plan procedure. Assigning a user that is
// already assigned succeeds without writing anything.
func (s *Service) AssignUser(ctx context.Context, cmd AssignUserCommand) ApiResponse[Unit] {
	log := s.log.With("user_id", cmd.UserID, "plan_id", cmd.PlanID, "procedure_id", cmd.ProcedureID)

	if err := validateIDs(
		idField{"plan_id", cmd.PlanID},
		idField{"procedure_id", cmd.ProcedureID},
		idField{"user_id", cmd.UserID},
	); err != nil {
		log.Warn("assign user rejected", "error", err)
		return Fail[Unit](err)
	}

	// User is checked first: when both are missing the caller sees the user.
	found, err := s.userExists(cmd.UserID)
	if err != nil {
		log.Error("assign user lookup failed", "error", err)
		return Fail[Unit](err)
	}
	if !found {
		return Fail[Unit](notFound("user %d", cmd.UserID))
	}

	found, err = s.planProcedureExists(cmd.PlanID, cmd.ProcedureID)
	if err != nil {
		log.Error("assign user lookup failed", "error", err)
		return Fail[Unit](err)
	}
	if !found {
		return Fail[Unit](notFound("plan %d procedure %d", cmd.PlanID, cmd.ProcedureID))
	}

	_, assigned, err := s.store.FindAssignedUser(cmd.UserID, cmd.PlanID, cmd.ProcedureID)
	if err != nil {
		err = fmt.Errorf("find assigned user: %w", err)
		log.Error("assign user lookup failed", "error", err)
		return Fail[Unit](err)
	}
	if assigned {
		log.Debug("user already assigned")
		return Succeed(Unit{})
	}

	s.store.Add(&models.AssignedUser{
		UserID:      cmd.UserID,
		PlanID:      cmd.PlanID,
		ProcedureID: cmd.ProcedureID,
	})
	if err := s.store.SaveChanges(ctx); err != nil {
		if errors.Is(err, ErrConflict) {
			// A concurrent request assigned the same triple first.
			log.Debug("user assigned concurrently")
			return Succeed(Unit{})
		}
		err = fmt.Errorf("save assigned user: %w", err)
		log.Error("assign user save failed", "error", err)
		return Fail[Unit](err)
	}

	log.Info("user assigned")
	return Succeed(Unit{})
}
