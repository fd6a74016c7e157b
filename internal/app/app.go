package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artist-mgmt/internal/config"
	"artist-mgmt/internal/database"
	"artist-mgmt/internal/handler"
	"artist-mgmt/internal/middleware"
	"artist-mgmt/internal/repository"
	"artist-mgmt/internal/router"
	"artist-mgmt/internal/service"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	musicRepo := repository.NewMusicRepository(pool)
	slog.Info("database ready")

	tokenService, err := service.NewTokenService(cfg.JWTPrivateKeyPath, cfg.JWTPublicKeyPath, cfg.JWTTokenTTL, userRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	artistService := service.NewArtistService(artistRepo)
	musicService := service.NewMusicService(musicRepo, artistRepo)
	dashboardService := service.NewDashboardService(userRepo, artistRepo, musicRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, cfg.DefaultPageSize)
	artistHandler := handler.NewArtistHandler(artistService, cfg.DefaultPageSize)
	musicHandler := handler.NewMusicHandler(musicService, cfg.DefaultPageSize)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	appRouter := router.New(cfg, authMiddleware, authHandler, userHandler, artistHandler, musicHandler, dashboardHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.db.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	a.db.Close()

	slog.Info("server stopped")
	return nil
}
