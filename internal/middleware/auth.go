package middleware

import (
	"errors"
	"net/http"
	"strings"

	"movie-shelf/internal/models"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserKey is the gin context key holding the authenticated *models.User.
const UserKey = "currentUser"

// AuthMiddleware verifies the bearer token and puts the resolved user into
// the request context. It is the only place authentication happens; handlers
// downstream re-check ownership, never tokens.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		// URL query ?token=xxx, for export downloads where the browser
		// follows a plain link and cannot set headers
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Message(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Message(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Message(c, http.StatusUnauthorized, "Token is not valid")
			} else {
				util.ServerError(c)
			}
			c.Abort()
			return
		}

		c.Set(UserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the user injected by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
