package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/apiclient"
	"github.com/iliyamo/register-my-marriage/internal/blog"
	"github.com/iliyamo/register-my-marriage/internal/config"
	"github.com/iliyamo/register-my-marriage/internal/document"
	"github.com/iliyamo/register-my-marriage/internal/handler"
	"github.com/iliyamo/register-my-marriage/internal/middleware"
	"github.com/iliyamo/register-my-marriage/internal/router"
	"github.com/iliyamo/register-my-marriage/internal/service"
	"github.com/iliyamo/register-my-marriage/internal/session"
	"github.com/iliyamo/register-my-marriage/internal/view"
)

const sessionPrefix = "rmm:sess:"

func main() {
	if _, err := config.LoadEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("load .env")
	}
	cfg := config.Load()
	log := config.NewLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it sessions stay in memory and the page
	// cache and rate limiter pass through.
	rdb := config.NewRedisClient(config.LoadRedisConfig())
	var backend session.Backend = session.NewMemoryBackend()
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		backend = session.NewRedisBackend(rdb, sessionPrefix, cfg.SessionTTL)
		log.Info("sessions persisted in redis")
	} else {
		log.Warn("redis unavailable; sessions kept in memory")
	}
	sessions := session.NewManager(backend, log,
		session.WithObserver(func(s session.Snapshot) {
			log.WithField("logged_in", s.LoggedIn()).Debug("session state changed")
		}),
	)
	go sessions.Run(ctx, 5*time.Minute)

	api := apiclient.New(config.LoadAPIConfig(), log)
	blogs, err := blog.NewService(api, cfg.BlogCacheTTL, log)
	if err != nil {
		log.WithError(err).Fatal("init blog cache")
	}
	defer blogs.Close()
	docs := document.NewService(api, log)
	events := service.NewPublisher(config.LoadQueueConfig(), log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = view.MustNew(cfg.StaticVersion)
	e.Use(middleware.RequestLogger(log))

	router.RegisterRoutes(e, router.Deps{
		Site:    handler.NewSiteHandler(blogs),
		Auth:    handler.NewAuthHandler(api),
		Contact: handler.NewContactHandler(api, events),
		Account: handler.NewAccountHandler(docs),
		Health:  handler.NewHealthHandler(rdb),
		Session: []echo.MiddlewareFunc{
			middleware.SessionLoader(sessions, cfg.CookieSecure, cfg.SessionTTL),
			middleware.ExpireStaleSessions(),
		},
		Cache:       middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
		RateLimit:   middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
		MetricsPath: cfg.MetricsPath,
	})

	addr := ":" + cfg.Port
	go func() {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
