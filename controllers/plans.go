package controllers

import (
	"net/http"

	"planroster/commands"
	"planroster/queries"

	"github.com/gin-gonic/gin"
)

// GET /api/users
func GetUsers(c *gin.Context) {
	store, ok := storeFor(c)
	if !ok {
		return
	}
	RespondResult(c, queries.ListUsers(store), "users")
}

// GET /api/procedures
func GetProcedures(c *gin.Context) {
	store, ok := storeFor(c)
	if !ok {
		return
	}
	RespondResult(c, queries.ListProcedures(store), "procedures")
}

// POST /api/plans
func CreatePlan(c *gin.Context) {
	svc, ok := serviceFor(c)
	if !ok {
		return
	}
	RespondResult(c, svc.CreatePlan(c.Request.Context()), "plan")
}

// GET /api/plans/:id
func GetPlanByID(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	store, ok := storeFor(c)
	if !ok {
		return
	}
	RespondResult(c, queries.GetPlan(store, id), "plan")
}

// POST /api/plan-procedures
func AddProcedureToPlan(c *gin.Context) {
	var cmd commands.AddProcedureToPlanCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	svc, ok := serviceFor(c)
	if !ok {
		return
	}
	RespondResult(c, svc.AddProcedureToPlan(c.Request.Context(), cmd), "")
}
