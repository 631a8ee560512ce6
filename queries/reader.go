package queries

import "planroster/models"

// Reader is the read-only slice of the entity store the queries need.
type Reader interface {
	FindPlan(planID int64) (models.Plan, bool, error)
	FindAssignedUsers(planID, procedureID int64) ([]models.AssignedUser, error)
	FindUsersByIDs(ids []int64) ([]models.User, error)
	FindProceduresByIDs(ids []int64) ([]models.Procedure, error)
	ListPlanProcedures(planID int64) ([]models.PlanProcedure, error)
	ListUsers() ([]models.User, error)
	ListProcedures() ([]models.Procedure, error)
}
