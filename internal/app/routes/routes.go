package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krmu/admissions/internal/app/controllers"
	"github.com/krmu/admissions/internal/app/models"
	"github.com/krmu/admissions/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	jwtAuth gin.HandlerFunc,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Intake form submission is public
	api.POST("/students", studentController.Create)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(jwtAuth)
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.GET("/auth/teachers", authController.ListTeachers)

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.List)
			students.GET("/dashboard/stats", studentController.DashboardStats)
			students.GET("/:id", studentController.Get)
			students.PATCH("/:id", studentController.Update)
			students.DELETE("/:id",
				middleware.RoleRequired(models.RoleAdmin),
				studentController.Delete)
			students.POST("/:id/send-acceptance", studentController.SendAcceptanceEmail)
			students.POST("/:id/send-rejection", studentController.SendRejectionEmail)
		}
	}
}
