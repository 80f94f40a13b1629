// Package app wires the store, session registry, and HTTP surface together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fullsco/core/internal/config"
	"github.com/fullsco/core/internal/metrics"
	"github.com/fullsco/core/internal/middleware"
	jwtpkg "github.com/fullsco/core/internal/pkg/jwt"
	"github.com/fullsco/core/internal/pkg/session"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	db       *store.Store
	sessions *session.Registry
	logger   *zap.Logger
	cancel   context.CancelFunc
}

// New initializes the application: config → store → sessions → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if secret := strings.TrimSpace(cfg.JWTSecret); secret != "" {
		jwtpkg.SetSecret(secret)
	} else {
		logger.Warn("jwt_secret is empty, using built-in default secret")
	}

	db := store.New()
	if cfg.ShouldSeed() {
		if err := db.Seed(); err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
	}

	sessions := session.NewRegistry(time.Duration(cfg.SessionTTLHours) * time.Hour)

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(metrics.GinMiddleware())
	router.Use(cors.New(corsConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())
	go sessions.Janitor(ctx, time.Hour)

	app := &App{cfg: cfg, router: router, db: db, sessions: sessions, logger: logger, cancel: cancel}
	app.registerRoutes()

	return app, nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsCfg.AllowOriginFunc = func(origin string) bool {
			return originAllowed(patterns, originHost(origin))
		}
	} else {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
	}
	return corsCfg
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Store exposes the data layer, mainly for tests.
func (a *App) Store() *store.Store { return a.db }

// Shutdown cleans up background goroutines.
func (a *App) Shutdown() { a.cancel() }
