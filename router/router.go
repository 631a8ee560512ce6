package router

import (
	"net/http"

	"planroster/controllers"
	dbpkg "planroster/db"
	"planroster/logger"
	"planroster/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, database *gorm.DB, log *logger.Logger) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(logger.SetToContext(log))
	r.Use(dbpkg.SetDBtoContext(database))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// Dropdown sources
	api.GET("/users", Logger(), controllers.GetUsers)
	api.GET("/procedures", Logger(), controllers.GetProcedures)

	// Plans and their procedures
	api.POST("/plans", Logger(), controllers.CreatePlan)
	api.GET("/plans/:id", Logger(), controllers.GetPlanByID)
	api.POST("/plan-procedures", Logger(), controllers.AddProcedureToPlan)

	// Users assigned to a plan procedure
	api.GET("/assigned-users", Logger(), controllers.GetAssignedUsers)
	api.POST("/assigned-users", Logger(), controllers.AssignUser)
	api.DELETE("/assigned-users", Logger(), controllers.RemoveAssignedUser)
	api.DELETE("/assigned-users/all", Logger(), controllers.RemoveAllAssignedUsers)

	log.Info("routes initialized")
}
