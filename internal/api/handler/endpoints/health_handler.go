package endpoints

import (
	"net/http"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"

	"sentracore/internal/api/handler/response"
)

func HealthHandler(router *graceful.Graceful) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Health{
			Status:  "healthy",
			Message: "SentraCore API is operational",
		})
	})
}
