package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	authadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/auth"
	dbadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/db"
	httpadapter "github.com/iain-kirkham/Mental-Health-App/internal/adapter/http"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/handlers"
	httpmiddleware "github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/middleware"
	"github.com/iain-kirkham/Mental-Health-App/internal/adapter/http/validation"
	appservice "github.com/iain-kirkham/Mental-Health-App/internal/app/service"
	"github.com/iain-kirkham/Mental-Health-App/internal/config"
	"github.com/iain-kirkham/Mental-Health-App/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	validation.RegisterJSONTagNames()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if cfg.MigrateOnStart {
		if err := dbadapter.Migrate(db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	keyfunc, err := authadapter.NewJWKSKeyfunc(ctx, cfg.JwksURL)
	if err != nil {
		logger.Fatal("failed to load signing keys", zap.Error(err))
	}

	resolver := authadapter.NewContextResolver()
	moodEntryService := appservice.NewMoodEntryService(dbadapter.NewMoodEntryRepository(db), resolver)
	focusSessionService := appservice.NewFocusSessionService(dbadapter.NewFocusSessionRepository(db), resolver)
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewDBStatsCollector(db.DB, "mysql"))
	metrics := httpmiddleware.NewMetrics(registry)

	limiter := httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.StartCleanup(time.Minute, ctx.Done())

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		metrics.Middleware(),
		httpmiddleware.CORS(cfg.CorsAllowedOrigins),
		httpmiddleware.LanguageMiddleware(),
	)

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		MoodEntry:    handlers.NewMoodEntryHandler(moodEntryService),
		FocusSession: handlers.NewFocusSessionHandler(focusSessionService),
		Task:         handlers.NewTaskHandler(taskService),
		Metrics:      metrics.Handler(),
	},
		httpmiddleware.Authenticate(httpmiddleware.AuthConfig{
			Keyfunc:  keyfunc,
			Issuer:   cfg.JwtIssuer,
			Audience: cfg.JwtAudience,
		}),
		limiter.Middleware(),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
	if err := runServer(ctx, srv, shutdownTimeout); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

const shutdownTimeout = 15 * time.Second

// runServer serves until ctx is cancelled, then waits up to timeout for
// in-flight requests to finish.
func runServer(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-serveErr
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
