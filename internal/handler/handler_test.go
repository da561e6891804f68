package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"movie-shelf/internal/database"
	"movie-shelf/internal/middleware"
	"movie-shelf/internal/models"
	"movie-shelf/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret     = "test-secret"
	testBcryptCost = 4 // keep password hashing fast in tests
)

func newTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestRouter wires the API the same way the real router does, minus the
// HTML pages (templates live relative to the project root, not this package).
func newTestRouter(tb testing.TB, db *gorm.DB) *gin.Engine {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	api := r.Group("/api")

	authHandler := NewAuthHandler(db, testSecret, 24, testBcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(testSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", GetMe)

	movieHandler := NewMovieHandler(db)
	protected.GET("/movies", movieHandler.ListMovies)
	protected.POST("/movies", movieHandler.CreateMovie)
	protected.GET("/movies/:id", movieHandler.GetMovie)
	protected.PUT("/movies/:id", movieHandler.UpdateMovie)
	protected.DELETE("/movies/:id", movieHandler.DeleteMovie)

	exportHandler := NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}

// seedUser creates an account directly in the store and returns it with a
// valid token, skipping the register/login round trip.
func seedUser(tb testing.TB, db *gorm.DB, email, username string) (*models.User, string) {
	tb.Helper()

	hash, err := util.HashPassword("secret1", testBcryptCost)
	if err != nil {
		tb.Fatalf("hash password: %v", err)
	}
	user := models.User{Email: email, Username: username, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		tb.Fatalf("create user: %v", err)
	}

	token, err := util.GenerateToken(testSecret, user.ID, time.Hour)
	if err != nil {
		tb.Fatalf("generate token: %v", err)
	}
	return &user, token
}

// seedMovie inserts a movie with an explicit creation time so ordering tests
// are deterministic.
func seedMovie(tb testing.TB, db *gorm.DB, userID, name string, createdAt time.Time) *models.Movie {
	tb.Helper()

	movie := models.Movie{
		UserID:    userID,
		Name:      name,
		Rating:    7,
		Overview:  "overview of " + name,
		ImageURL:  "http://example.com/" + name + ".jpg",
		CreatedAt: createdAt,
	}
	if err := db.Create(&movie).Error; err != nil {
		tb.Fatalf("create movie: %v", err)
	}
	return &movie
}

func doJSON(tb testing.TB, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	tb.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			tb.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(tb testing.TB, w *httptest.ResponseRecorder, out interface{}) {
	tb.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		tb.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func movieCount(tb testing.TB, db *gorm.DB) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(&models.Movie{}).Count(&n).Error; err != nil {
		tb.Fatalf("count movies: %v", err)
	}
	return n
}
