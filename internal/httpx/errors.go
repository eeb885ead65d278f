package httpx

import "github.com/gin-gonic/gin"

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: order not found
	Error string `json:"error"`
}

// Error aborts the request with {"error": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}
