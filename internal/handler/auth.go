package handler

import (
	"net/http"
	"strings"
	"time"

	"movie-shelf/internal/models"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if errs := util.ValidateRegistration(req.Email, req.Username, req.Password); len(errs) > 0 {
		util.ValidationFailed(c, errs)
		return
	}

	// email and username are unique, case-insensitive
	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)", req.Email, req.Username).
		Count(&count).Error; err != nil {
		util.ServerError(c)
		return
	}
	if count > 0 {
		util.Message(c, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.ServerError(c)
		return
	}

	user := models.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	var user models.User
	if err := h.DB.Where("LOWER(email) = LOWER(?)", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// unknown email and wrong password are indistinguishable
			util.Message(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.ServerError(c)
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Message(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
