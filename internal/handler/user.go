package handler

import (
	"net/http"

	"movie-shelf/internal/middleware"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the current user. The client calls it on startup to confirm
// a cached token before trusting the session.
func GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Message(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	})
}
