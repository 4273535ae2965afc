package router

import (
	"employee-directory/internal/handlers"
	"employee-directory/internal/middleware"
	"employee-directory/internal/store"

	"github.com/gin-gonic/gin"
)

func Setup(r *gin.Engine, s *store.Store) {
	eh := handlers.NewEmployeeHandler(s)

	r.Use(middleware.RequestID())

	r.GET("/health", handlers.Health(s))

	r.GET("/employees", eh.ListEmployees)
	r.GET("/employees/:id", eh.GetEmployeeByID)
	r.POST("/employees", eh.CreateEmployee)
}
