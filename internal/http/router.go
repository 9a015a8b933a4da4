package http

import (
	"log/slog"

	"github.com/BobbyWang0120/glint-next/internal/config"
	"github.com/BobbyWang0120/glint-next/internal/http/handlers"
	"github.com/BobbyWang0120/glint-next/internal/http/middleware"
	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Config         *config.Config
	AuthService    *services.AuthService
	ProfileService *services.ProfileService
	JobService     *services.JobService
	Logger         *slog.Logger
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)
	seekerHandler := handlers.NewSeekerHandler(deps.ProfileService)
	companyHandler := handlers.NewCompanyHandler(deps.ProfileService)
	jobHandler := handlers.NewJobHandler(deps.JobService)

	router.GET("/healthz", handlers.Health)

	auth := router.Group("/auth")
	auth.Use(deps.RateLimiter.Middleware())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Every profile route passes through the JWT gate; there is no other
	// path to these handlers.
	protected := router.Group("")
	protected.Use(middleware.JWTAuth(middleware.AuthConfig{Secret: deps.Config.JWTSecret}))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/profile", profileHandler.Get)
		protected.POST("/profile", profileHandler.Update)
		protected.GET("/profile/seeker", seekerHandler.Get)
		protected.POST("/profile/seeker", seekerHandler.Upsert)
		protected.GET("/profile/company", companyHandler.Get)
		protected.POST("/profile/company", companyHandler.Upsert)
	}

	router.GET("/jobs", jobHandler.List)
	router.GET("/jobs/:id", jobHandler.GetByID)

	return router
}
