package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamInt parses a path parameter. Range checks belong to the command or
// query that consumes it.
func ParamInt(c *gin.Context, name string) (int64, bool) {
	return parseInt(c, name, c.Param(name))
}

func QueryInt(c *gin.Context, name string) (int64, bool) {
	return parseInt(c, name, c.Query(name))
}

func parseInt(c *gin.Context, name, v string) (int64, bool) {
	if v == "" {
		RespondError(c, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		RespondError(c, name+" is not a number", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
