package queries

import (
	"fmt"

	"planroster/commands"
	"planroster/models"
	"planroster/tools"
)

type PlanView struct {
	models.Plan
	Procedures []models.Procedure `json:"procedures"`
}

func ListUsers(r Reader) commands.ApiResponse[[]models.User] {
	users, err := r.ListUsers()
	if err != nil {
		return commands.Fail[[]models.User](fmt.Errorf("list users: %w", err))
	}
	return commands.Succeed(users)
}

func ListProcedures(r Reader) commands.ApiResponse[[]models.Procedure] {
	procedures, err := r.ListProcedures()
	if err != nil {
		return commands.Fail[[]models.Procedure](fmt.Errorf("list procedures: %w", err))
	}
	return commands.Succeed(procedures)
}

// GetPlan returns a plan together with the procedures linked to it.
func GetPlan(r Reader, planID int64) commands.ApiResponse[PlanView] {
	if !tools.ValidID(planID) {
		return commands.Fail[PlanView](fmt.Errorf("%w: invalid plan_id %d", commands.ErrBadRequest, planID))
	}

	plan, found, err := r.FindPlan(planID)
	if err != nil {
		return commands.Fail[PlanView](fmt.Errorf("find plan %d: %w", planID, err))
	}
	if !found {
		return commands.Fail[PlanView](fmt.Errorf("%w: plan %d", commands.ErrNotFound, planID))
	}

	links, err := r.ListPlanProcedures(planID)
	if err != nil {
		return commands.Fail[PlanView](fmt.Errorf("list plan procedures: %w", err))
	}
	ids := make([]int64, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ProcedureID)
	}
	procedures, err := r.FindProceduresByIDs(ids)
	if err != nil {
		return commands.Fail[PlanView](fmt.Errorf("find procedures: %w", err))
	}

	return commands.Succeed(PlanView{Plan: plan, Procedures: procedures})
}
