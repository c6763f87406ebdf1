package http

import (
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/ports"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	tokens ports.TokenManager,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(tokens))
	{
		authed.GET("/auth/profile", authHandler.Profile)
		authed.GET("/auth/users", authHandler.ListUsers)
		authed.POST("/tasks", taskHandler.CreateTask)
		authed.GET("/tasks", taskHandler.ListTasks)
		authed.GET("/tasks/stats", taskHandler.TaskStats)
		authed.GET("/tasks/:id", taskHandler.GetTask)
		authed.PATCH("/tasks/:id", taskHandler.UpdateTask)
		authed.DELETE("/tasks/:id", taskHandler.DeleteTask)
	}
}
