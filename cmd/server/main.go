package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/The-boat-boat/sponsorreel/internal/di"
	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/pkg/config"
	"github.com/The-boat-boat/sponsorreel/pkg/logger"
	"github.com/The-boat-boat/sponsorreel/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := di.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}
	defer container.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS())

	registerRoutes(engine, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("backend", cfg.App.Backend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

func registerRoutes(engine *gin.Engine, c *di.Container) {
	engine.GET("/health", c.HealthHandler.Health)

	v1 := engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/signup", c.AuthHandler.Signup)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/me", c.AuthMiddleware, c.AuthHandler.Me)
		auth.PUT("/profile", c.AuthMiddleware, c.AuthHandler.UpdateProfile)
	}

	// Browsing published events needs no session
	v1.GET("/events/browse", c.EventHandler.Browse)

	operator := v1.Group("", c.AuthMiddleware, middleware.RequireUserType(string(domain.UserTypeOperator)))
	{
		operator.POST("/events", c.EventHandler.Create)
		operator.GET("/events", c.EventHandler.List)
		operator.GET("/events/:id", c.EventHandler.GetByID)
		operator.PUT("/events/:id", c.EventHandler.Update)
		operator.DELETE("/events/:id", c.EventHandler.Delete)
		operator.POST("/events/:id/tiers", c.EventHandler.AddTier)
		operator.PUT("/tiers/:id", c.EventHandler.UpdateTier)
		operator.DELETE("/tiers/:id", c.EventHandler.DeleteTier)
		operator.PUT("/events/:id/demographics", c.EventHandler.UpdateDemographics)

		// Static /sponsors/* paths coexist with the /sponsors/:id param
		// below; gin panics at registration if these ever conflict
		operator.GET("/sponsors/search", c.SponsorHandler.Search)
		operator.GET("/sponsors/saved", c.SponsorHandler.ListSaved)
		operator.POST("/sponsors/saved", c.SponsorHandler.Save)
		operator.DELETE("/sponsors/saved/:id", c.SponsorHandler.Unsave)

		operator.GET("/dashboard/stats", c.DashboardHandler.Stats)
		operator.GET("/dashboard/revenue", c.DashboardHandler.Revenue)
		operator.GET("/dashboard/activity", c.DashboardHandler.Activity)
	}

	sponsor := v1.Group("", c.AuthMiddleware, middleware.RequireUserType(string(domain.UserTypeSponsor)))
	{
		sponsor.GET("/sponsors/me", c.SponsorHandler.GetMine)
		sponsor.PUT("/sponsors/:id", c.SponsorHandler.UpdateProfile)

		sponsor.POST("/applications", c.EventHandler.SubmitApplication)
		sponsor.GET("/applications", c.EventHandler.ListApplications)
		sponsor.POST("/applications/:id/withdraw", c.EventHandler.WithdrawApplication)
	}

	// Sponsor detail is visible to any signed-in account
	v1.GET("/sponsors/:id", c.AuthMiddleware, c.SponsorHandler.GetByID)
	v1.GET("/sponsors/business-types", c.AuthMiddleware, c.SponsorHandler.BusinessTypes)
}
