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

	"github.com/gandhamathanv-guvi/voice-translator/internal/config"
	"github.com/gandhamathanv-guvi/voice-translator/internal/database"
	"github.com/gandhamathanv-guvi/voice-translator/internal/handler"
	"github.com/gandhamathanv-guvi/voice-translator/internal/middleware"
	"github.com/gandhamathanv-guvi/voice-translator/internal/repository"
	"github.com/gandhamathanv-guvi/voice-translator/internal/router"
	"github.com/gandhamathanv-guvi/voice-translator/internal/service"
	"github.com/gandhamathanv-guvi/voice-translator/internal/storage"
	"github.com/gandhamathanv-guvi/voice-translator/internal/synthesis"
	"github.com/gandhamathanv-guvi/voice-translator/internal/translation"
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

	audioStore, err := storage.NewAudioStore(cfg.StaticRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio store: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	userRepo := repository.NewUserRepository(db.Pool)
	slog.Info("database ready")

	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	authService := service.NewAuthService(userRepo, tokenService)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	speechEngine := synthesis.NewEngine(cfg.SpeechEngineURL, cfg.EngineTimeout)
	translator := translation.NewClient(cfg.TranslateEngineURL, cfg.EngineTimeout)
	speechService := service.NewSpeechService(speechEngine, translator, audioStore)

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Speech:    handler.NewSpeechHandler(speechService),
		Languages: handler.NewLanguageHandler(),
		Pages:     handler.NewPagesHandler(cfg.StaticRoot),
		Health:    handler.NewHealthHandler(db),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
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

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
