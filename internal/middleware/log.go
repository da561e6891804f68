package middleware

import (
	"movie-shelf/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware records one row per authenticated API request. It runs
// after AuthMiddleware, so the user is already in the context when the
// handler finishes.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user := CurrentUser(c)
		if user == nil {
			return
		}

		entry := models.AuditLog{
			UserID:    user.ID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		// audit failures never fail the request itself
		_ = db.Create(&entry).Error
	}
}
