package handler

import (
	"errors"
	"net/http"
	"strings"

	"movie-shelf/internal/middleware"
	"movie-shelf/internal/models"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MovieHandler serves the owner-scoped movie CRUD.
type MovieHandler struct {
	DB *gorm.DB
}

func NewMovieHandler(db *gorm.DB) *MovieHandler {
	return &MovieHandler{DB: db}
}

// movieReq is the full payload for create and update. Rating is a pointer so
// an absent field is distinguishable from a legitimate 0.
type movieReq struct {
	Name     string   `json:"name"`
	Rating   *float64 `json:"rating"`
	Overview string   `json:"overview"`
	ImageURL string   `json:"imageURL"`
}

// fetchOwned resolves id to a movie the user owns. Absent ids are 404; a
// movie someone else owns is 401, deliberately distinct.
func (h *MovieHandler) fetchOwned(c *gin.Context, user *models.User) (*models.Movie, bool) {
	id := c.Param("id")

	var movie models.Movie
	if err := h.DB.First(&movie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Message(c, http.StatusNotFound, "Movie not found")
		} else {
			util.ServerError(c)
		}
		return nil, false
	}

	if movie.UserID != user.ID {
		util.Message(c, http.StatusUnauthorized, "Not authorized")
		return nil, false
	}
	return &movie, true
}

// ListMovies returns every movie owned by the caller, newest first. Equal
// creation times order by id so the result is deterministic.
func (h *MovieHandler) ListMovies(c *gin.Context) {
	user := middleware.CurrentUser(c)

	movies := make([]models.Movie, 0)
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&movies).Error; err != nil {
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req movieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if errs := util.ValidateMovie(req.Name, req.Rating, req.Overview, req.ImageURL); len(errs) > 0 {
		util.ValidationFailed(c, errs)
		return
	}

	movie := models.Movie{
		UserID:   user.ID,
		Name:     req.Name,
		Rating:   *req.Rating,
		Overview: req.Overview,
		ImageURL: req.ImageURL,
	}
	if err := h.DB.Create(&movie).Error; err != nil {
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	user := middleware.CurrentUser(c)

	movie, ok := h.fetchOwned(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, movie)
}

// UpdateMovie replaces all four mutable fields in one write. Validation runs
// before the lookup, so a bad payload never reaches the store.
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req movieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if errs := util.ValidateMovie(req.Name, req.Rating, req.Overview, req.ImageURL); len(errs) > 0 {
		util.ValidationFailed(c, errs)
		return
	}

	movie, ok := h.fetchOwned(c, user)
	if !ok {
		return
	}

	movie.Name = req.Name
	movie.Rating = *req.Rating
	movie.Overview = req.Overview
	movie.ImageURL = req.ImageURL

	if err := h.DB.Save(movie).Error; err != nil {
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	user := middleware.CurrentUser(c)

	movie, ok := h.fetchOwned(c, user)
	if !ok {
		return
	}

	if err := h.DB.Delete(movie).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Message(c, http.StatusOK, "Movie removed")
}
