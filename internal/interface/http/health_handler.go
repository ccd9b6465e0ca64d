package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-management-api/pkg/response"
)

// Health GET /api/health
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
}
