package router

import (
	"net/http"

	"movie-shelf/internal/config"
	"movie-shelf/internal/handler"
	"movie-shelf/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func page(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{"title": title})
	}
}

// SetupRouter configures the Gin engine, pages, static resources and the API.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	r.GET("/", page("movies.html", "Movie Shelf"))
	r.GET("/login", page("login.html", "Movie Shelf - Log in"))
	r.GET("/signup", page("signup.html", "Movie Shelf - Sign up"))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Movie Shelf API is running"})
	})

	// ====== API ======
	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// everything below requires a valid token
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	movieHandler := handler.NewMovieHandler(db)
	protected.GET("/movies", movieHandler.ListMovies)
	protected.POST("/movies", movieHandler.CreateMovie)
	protected.GET("/movies/:id", movieHandler.GetMovie)
	protected.PUT("/movies/:id", movieHandler.UpdateMovie)
	protected.DELETE("/movies/:id", movieHandler.DeleteMovie)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
