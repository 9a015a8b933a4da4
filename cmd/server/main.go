package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BobbyWang0120/glint-next/internal/config"
	"github.com/BobbyWang0120/glint-next/internal/db"
	transport "github.com/BobbyWang0120/glint-next/internal/http"
	"github.com/BobbyWang0120/glint-next/internal/http/middleware"
	"github.com/BobbyWang0120/glint-next/internal/repo"
	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.Migrate(cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbConn, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.EnsureSeedJobs(ctx, dbConn.Pool, cfg.RequestTimeout); err != nil {
		logger.Error("failed to seed jobs", "error", err)
		os.Exit(1)
	}

	var avatars storage.AvatarStorage
	if cfg.Minio.Configured() {
		store, err := storage.NewMinioStore(storage.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
			PublicURL: cfg.Minio.PublicURL,
		})
		if err != nil {
			logger.Error("failed to init avatar storage", "error", err)
			os.Exit(1)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			logger.Error("failed to ensure avatar bucket", "error", err)
			os.Exit(1)
		}
		avatars = store
	} else {
		logger.Warn("avatar storage not configured, image uploads disabled")
	}

	userRepo := repo.NewUserRepo(dbConn.Pool, cfg.RequestTimeout)
	userProfileRepo := repo.NewUserProfileRepo(dbConn.Pool, cfg.RequestTimeout)
	seekerRepo := repo.NewSeekerProfileRepo(dbConn.Pool, cfg.RequestTimeout)
	companyRepo := repo.NewCompanyProfileRepo(dbConn.Pool, cfg.RequestTimeout)
	jobRepo := repo.NewJobRepo(dbConn.Pool, cfg.RequestTimeout)

	authService := services.NewAuthService(userRepo, cfg)
	profileService := services.NewProfileService(userProfileRepo, seekerRepo, companyRepo, avatars)
	jobService := services.NewJobService(jobRepo)

	router := transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		AuthService:    authService,
		ProfileService: profileService,
		JobService:     jobService,
		Logger:         logger,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
