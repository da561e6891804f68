package handler

import (
	"net/http"
	"strconv"
	"time"

	"movie-shelf/internal/middleware"
	"movie-shelf/internal/models"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler serves the caller's own audit trail.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

type logResp struct {
	ID        uint      `json:"id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// ListLogs lists the caller's audit entries, newest first, paged.
func (h *LogHandler) ListLogs(c *gin.Context) {
	user := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.AuditLog{}).Where("user_id = ?", user.ID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		util.ServerError(c)
		return
	}

	var entries []models.AuditLog
	if err := base.Order("created_at DESC, id DESC").
		Limit(size).Offset(offset).
		Find(&entries).Error; err != nil {
		util.ServerError(c)
		return
	}

	logs := make([]logResp, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, logResp{
			ID:        e.ID,
			Method:    e.Method,
			Path:      e.Path,
			IP:        e.IP,
			UserAgent: e.UserAgent,
			CreatedAt: e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":      logs,
		"total":     total,
		"page":      page,
		"page_size": size,
	})
}
