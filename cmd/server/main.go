package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/auth"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/config"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/dashboard"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/handlers"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/middleware"
	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/store"
)

var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	ctx := context.Background()

	loc, err := time.LoadLocation(cfg.Family.Timezone)
	if err != nil {
		logger.Error("invalid family timezone", "timezone", cfg.Family.Timezone, "error", err)
		os.Exit(1)
	}

	// Store is optional: without a DSN the dashboard serves mock data
	// outside production.
	var st *store.PGStore
	if cfg.Database.DSN != "" {
		st, err = store.New(ctx, cfg.Database)
		if err != nil {
			logger.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer st.Close()
	} else {
		logger.Warn("no database configured, dashboard will serve mock data outside production")
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	svcOpts := dashboard.Options{
		Production:   cfg.Production(),
		Timezone:     loc,
		WeekStartDay: time.Weekday(cfg.Family.WeekStartDay),
		Logger:       logger,
	}
	if st != nil {
		svcOpts.Store = st
	}
	svc := dashboard.NewService(svcOpts)

	// Warm the snapshot; failures are recoverable via refresh.
	if err := svc.Load(ctx); err != nil {
		logger.Warn("initial dashboard load failed", "error", err)
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "healthy", "version": Version}
		if st != nil {
			if err := st.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
			status["database"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version": Version,
			"service": "family-dashboard",
		})
	})

	// Kiosk dashboard surface
	r.GET("/api/dashboard", handlers.GetDashboard(svc, jwtService, loc))
	r.POST("/api/dashboard/refresh", handlers.RefreshDashboard(svc))
	r.POST("/api/routines/:id/toggle", handlers.ToggleRoutine(svc))

	// Admin surface requires a configured store: writes go through the
	// backend, never through the in-memory snapshot alone.
	if st != nil {
		links := auth.NewLoginLinkService(
			st,
			auth.NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.From),
			jwtService,
			cfg.Email.BaseURL,
			cfg.Auth.LoginLinkTTL,
			cfg.Auth.AdminEmailList(),
		)
		r.POST("/api/auth/login-link", handlers.RequestLoginLink(links))
		r.POST("/api/auth/redeem", handlers.RedeemLoginLink(links))

		admin := r.Group("/api/admin", middleware.RequireSession(jwtService))
		{
			admin.POST("/people", handlers.CreatePerson(st, svc))
			admin.PATCH("/people/:id", handlers.UpdatePerson(st, svc))
			admin.DELETE("/people/:id", handlers.DeletePerson(st, svc))

			admin.POST("/recurring-items", handlers.CreateRecurringItem(st, svc))
			admin.PATCH("/recurring-items/:id", handlers.UpdateRecurringItem(st, svc))
			admin.DELETE("/recurring-items/:id", handlers.DeleteRecurringItem(st, svc))

			admin.POST("/oneoff-items", handlers.CreateOneOffItem(st, svc, loc))
			admin.PATCH("/oneoff-items/:id", handlers.UpdateOneOffItem(st, svc, loc))
			admin.DELETE("/oneoff-items/:id", handlers.DeleteOneOffItem(st, svc))

			admin.POST("/replenish-items", handlers.CreateReplenishItem(st, svc))
			admin.PATCH("/replenish-items/:id", handlers.UpdateReplenishItem(st, svc))
			admin.DELETE("/replenish-items/:id", handlers.DeleteReplenishItem(st, svc))

			admin.POST("/routine-templates", handlers.CreateRoutineTemplate(st, svc))
			admin.PATCH("/routine-templates/:id", handlers.UpdateRoutineTemplate(st, svc))
			admin.DELETE("/routine-templates/:id", handlers.DeleteRoutineTemplate(st, svc))

			admin.POST("/homeschool-notes", handlers.CreateHomeschoolNote(st, svc))
			admin.PATCH("/homeschool-notes/:id", handlers.UpdateHomeschoolNote(st, svc))
			admin.DELETE("/homeschool-notes/:id", handlers.DeleteHomeschoolNote(st, svc))

			admin.POST("/weekly-focus", handlers.SetWeeklyFocus(st, svc))

			admin.GET("/settings", handlers.GetSettings(svc))
			admin.PATCH("/settings", handlers.UpdateSettings(st, svc))
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "version", Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}

// newLogger builds the process logger and installs it as the slog default
func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
