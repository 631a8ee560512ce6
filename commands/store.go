package commands

import (
	"context"

	"planroster/models"
)

// Store is the entity store the commands read from and write through.
//
// Find methods report absence with found == false and a nil error; the error
// is reserved for storage failures. Add, Remove and RemoveRange only queue
// work. Nothing reaches the database until SaveChanges commits the queue in a
// single transaction. Values passed to Add must be pointers to models.
type Store interface {
	FindUser(userID int64) (models.User, bool, error)
	FindPlan(planID int64) (models.Plan, bool, error)
	FindProcedure(procedureID int64) (models.Procedure, bool, error)
	FindPlanProcedure(planID, procedureID int64) (models.PlanProcedure, bool, error)
	FindAssignedUser(userID, planID, procedureID int64) (models.AssignedUser, bool, error)
	FindAssignedUsers(planID, procedureID int64) ([]models.AssignedUser, error)

	Add(value interface{})
	Remove(value interface{})
	RemoveRange(values ...interface{})
	SaveChanges(ctx context.Context) error
}
