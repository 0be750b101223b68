package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(router *gin.Engine, personHandler *PersonHandler, emailHandler *EmailHandler, healthHandler *HealthHandler) {
	people := router.Group("/people")
	{
		people.POST("", personHandler.Create)
		people.GET("", personHandler.List)
		people.GET("/search", personHandler.Search)
		people.GET("/:id", personHandler.GetByID)
		people.PUT("/:id", personHandler.Update)
		people.DELETE("/:id", personHandler.Delete)

		people.POST("/:id/emails", emailHandler.Add)
		people.GET("/:id/emails", emailHandler.ListByPerson)
	}

	emails := router.Group("/emails")
	{
		emails.GET("/:id", emailHandler.GetByID)
		emails.PUT("/:id", emailHandler.Update)
		emails.DELETE("/:id", emailHandler.Remove)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
