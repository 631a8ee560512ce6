package commands

import (
	"context"
	"errors"
	"fmt"

	"planroster/models"
)

type AddProcedureToPlanCommand struct {
	PlanID      int64 `json:"plan_id" form:"plan_id"`
	ProcedureID int64 `json:"procedure_id" form:"procedure_id"`
}

func (s *Service) CreatePlan(ctx context.Context) ApiResponse[models.Plan] {
	plan := models.Plan{}
	s.store.Add(&plan)
	if err := s.store.SaveChanges(ctx); err != nil {
		err = fmt.Errorf("create plan: %w", err)
		s.log.Error("create plan failed", "error", err)
		return Fail[models.Plan](err)
	}
	s.log.Info("plan created", "plan_id", plan.ID)
	return Succeed(plan)
}

// AddProcedureToPlan links a procedure to a plan so users can be assigned to
// it. Linking twice is a no-op.
func (s *Service) AddProcedureToPlan(ctx context.Context, cmd AddProcedureToPlanCommand) ApiResponse[Unit] {
	log := s.log.With("plan_id", cmd.PlanID, "procedure_id", cmd.ProcedureID)

	if err := validateIDs(
		idField{"plan_id", cmd.PlanID},
		idField{"procedure_id", cmd.ProcedureID},
	); err != nil {
		log.Warn("add procedure to plan rejected", "error", err)
		return Fail[Unit](err)
	}

	if _, found, err := s.store.FindPlan(cmd.PlanID); err != nil {
		return Fail[Unit](fmt.Errorf("find plan %d: %w", cmd.PlanID, err))
	} else if !found {
		return Fail[Unit](notFound("plan %d", cmd.PlanID))
	}

	if _, found, err := s.store.FindProcedure(cmd.ProcedureID); err != nil {
		return Fail[Unit](fmt.Errorf("find procedure %d: %w", cmd.ProcedureID, err))
	} else if !found {
		return Fail[Unit](notFound("procedure %d", cmd.ProcedureID))
	}

	linked, err := s.planProcedureExists(cmd.PlanID, cmd.ProcedureID)
	if err != nil {
		return Fail[Unit](err)
	}
	if linked {
		return Succeed(Unit{})
	}

	s.store.Add(&models.PlanProcedure{PlanID: cmd.PlanID, ProcedureID: cmd.ProcedureID})
	if err := s.store.SaveChanges(ctx); err != nil && !errors.Is(err, ErrConflict) {
		err = fmt.Errorf("link procedure to plan: %w", err)
		log.Error("add procedure to plan failed", "error", err)
		return Fail[Unit](err)
	}

	log.Info("procedure added to plan")
	return Succeed(Unit{})
}
