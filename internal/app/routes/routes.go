package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusspace/backend/internal/app/controllers"
	"github.com/campusspace/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	absenceController *controllers.AbsenceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	users := v1.Group("/users")
	{
		users.POST("/login", userController.Login)
	}

	absences := v1.Group("/absences")
	{
		// Absence reads are deliberately open, unlike the admin-only write
		// path.
		absences.GET("", absenceController.GetTeachersAbsent)
	}

	// --- Authenticated routes ---
	// The admin gate itself lives in the services, which receive the caller
	// identity explicitly; the middleware only establishes who is calling.
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		usersProtected := authenticated.Group("/users")
		{
			usersProtected.POST("/register", userController.Register)
			usersProtected.GET("/current", userController.GetCurrentUser)
			usersProtected.GET("/teachers", userController.GetTeachers)
			usersProtected.PATCH("/:teacherId/admin", userController.ChangeAdmin)
			usersProtected.DELETE("/:teacherId", userController.DeleteTeacher)
		}

		absencesProtected := authenticated.Group("/absences")
		{
			absencesProtected.POST("", absenceController.AddTeachersAbsent)
		}
	}
}
