package queries

import (
	"fmt"

	"planroster/commands"
	"planroster/models"
	"planroster/tools"
)

type AssignedUserView struct {
	UserID      int64       `json:"user_id"`
	PlanID      int64       `json:"plan_id"`
	ProcedureID int64       `json:"procedure_id"`
	User        models.User `json:"user"`
}

// ListAssignedUsers returns the users assigned to a plan procedure, ordered
// by user id. Rows whose user no longer exists are skipped.
func ListAssignedUsers(r Reader, planID, procedureID int64) commands.ApiResponse[[]AssignedUserView] {
	if !tools.ValidID(planID) {
		return commands.Fail[[]AssignedUserView](fmt.Errorf("%w: invalid plan_id %d", commands.ErrBadRequest, planID))
	}
	if !tools.ValidID(procedureID) {
		return commands.Fail[[]AssignedUserView](fmt.Errorf("%w: invalid procedure_id %d", commands.ErrBadRequest, procedureID))
	}

	rows, err := r.FindAssignedUsers(planID, procedureID)
	if err != nil {
		return commands.Fail[[]AssignedUserView](fmt.Errorf("find assigned users: %w", err))
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	users, err := r.FindUsersByIDs(ids)
	if err != nil {
		return commands.Fail[[]AssignedUserView](fmt.Errorf("find users: %w", err))
	}
	byID := make(map[int64]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	views := make([]AssignedUserView, 0, len(rows))
	for _, row := range rows {
		user, ok := byID[row.UserID]
		if !ok {
			continue
		}
		views = append(views, AssignedUserView{
			UserID:      row.UserID,
			PlanID:      row.PlanID,
			ProcedureID: row.ProcedureID,
			User:        user,
		})
	}
	return commands.Succeed(views)
}
