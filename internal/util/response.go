package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message writes the plain {"message": ...} body used across the API.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ValidationFailed writes a 400 enumerating every failing field.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// ServerError hides store failures behind an opaque message.
func ServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Server error")
}
