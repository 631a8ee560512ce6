package controllers

import (
	"net/http"

	"planroster/commands"
	dbpkg "planroster/db"
	"planroster/logger"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"succeeded": false, "error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondResult writes an ApiResponse. BadRequest and NotFound keep their
// message; anything else is logged and reported as a 500. When key is set the
// value is returned under it.
func RespondResult[T any](c *gin.Context, res commands.ApiResponse[T], key string) {
	if !res.Succeeded() {
		err := res.Err()
		switch {
		case commands.IsBadRequest(err):
			RespondError(c, err.Error(), http.StatusBadRequest)
		case commands.IsNotFound(err):
			RespondError(c, err.Error(), http.StatusNotFound)
		default:
			logger.FromContext(c).Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			RespondError(c, "internal error", http.StatusInternalServerError)
		}
		return
	}

	body := gin.H{"succeeded": true}
	if key != "" {
		body[key] = res.Value()
	}
	RespondSuccess(c, body)
}

// storeFor returns the request Store, answering 500 itself when the database
// middleware is missing.
func storeFor(c *gin.Context) (*dbpkg.Store, bool) {
	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, "database not configured in context", http.StatusInternalServerError)
		return nil, false
	}
	return store, true
}

func serviceFor(c *gin.Context) (*commands.Service, bool) {
	store, ok := storeFor(c)
	if !ok {
		return nil, false
	}
	return commands.New(store, logger.FromContext(c)), true
}
