package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/handlers"
	"github.com/gipis/website/internal/middleware"
	"github.com/gipis/website/internal/services"
	"github.com/gipis/website/internal/store"
	"gorm.io/gorm"
)

// SetupRouter wires the store, services and handlers onto a gin engine.
// The database handle is injected; there is no ambient global.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	st := store.NewStore(db)
	authService := services.NewAuthService(cfg, st)

	pageHandler := handlers.NewPageHandler(st)
	authHandler := handlers.NewAuthHandler(cfg, authService)

	// Session resolution on every request; anonymous when absent or stale
	router.Use(middleware.SessionMiddleware(cfg, authService))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public pages
	router.GET("/", pageHandler.Home)
	router.GET("/equipo", pageHandler.Team)
	router.GET("/equipo/:slug", pageHandler.MemberDetail)
	router.GET("/investigacion", pageHandler.Research)
	router.GET("/investigacion/:id", pageHandler.ResearchLineDetail)
	router.GET("/cooperacion", pageHandler.Cooperation)
	router.GET("/novedades", pageHandler.NewsList)
	router.GET("/novedades/:slug", pageHandler.NewsDetail)
	router.GET("/contacto", pageHandler.Contact)

	// Member self-service
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)

		authProtected := auth.Group("")
		authProtected.Use(middleware.RequireMember())
		{
			authProtected.POST("/logout", authHandler.Logout)
			authProtected.GET("/dashboard", authHandler.Dashboard)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	return router
}
