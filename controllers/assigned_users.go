package controllers

import (
	"net/http"

	"planroster/commands"
	"planroster/queries"

	"github.com/gin-gonic/gin"
)

// GET /api/assigned-users?plan_id=&procedure_id=
func GetAssignedUsers(c *gin.Context) {
	planID, ok := QueryInt(c, "plan_id")
	if !ok {
		return
	}
	procedureID, ok := QueryInt(c, "procedure_id")
	if !ok {
		return
	}
	store, ok := storeFor(c)
	if !ok {
		return
	}
	RespondResult(c, queries.ListAssignedUsers(store, planID, procedureID), "assigned_users")
}

// POST /api/assigned-users
func AssignUser(c *gin.Context) {
	var cmd commands.AssignUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	svc, ok := serviceFor(c)
	if !ok {
		return
	}
	RespondResult(c, svc.AssignUser(c.Request.Context(), cmd), "")
}

// DELETE /api/assigned-users
func RemoveAssignedUser(c *gin.Context) {
	var cmd commands.RemoveAssignedUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	svc, ok := serviceFor(c)
	if !ok {
		return
	}
	RespondResult(c, svc.RemoveAssignedUser(c.Request.Context(), cmd), "")
}

// DELETE /api/assigned-users/all
func RemoveAllAssignedUsers(c *gin.Context) {
	var cmd commands.RemoveAllAssignedUsersCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	svc, ok := serviceFor(c)
	if !ok {
		return
	}
	RespondResult(c, svc.RemoveAllAssignedUsers(c.Request.Context(), cmd), "")
}
