package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/venturebridge/venturebridge/internal/config"
	"github.com/venturebridge/venturebridge/internal/db"
	dbMongo "github.com/venturebridge/venturebridge/internal/db/mongo"
	logpkg "github.com/venturebridge/venturebridge/internal/logger"
	"github.com/venturebridge/venturebridge/internal/metrics"
	activityrepo "github.com/venturebridge/venturebridge/internal/repository/activity"
	chatrepo "github.com/venturebridge/venturebridge/internal/repository/chat"
	profilerepo "github.com/venturebridge/venturebridge/internal/repository/profile"
	verificationrepo "github.com/venturebridge/venturebridge/internal/repository/verification"
	"github.com/venturebridge/venturebridge/internal/transport/httpapi"
	authuc "github.com/venturebridge/venturebridge/internal/usecase/auth"
	chatuc "github.com/venturebridge/venturebridge/internal/usecase/chat"
	healthuc "github.com/venturebridge/venturebridge/internal/usecase/health"
	matchinguc "github.com/venturebridge/venturebridge/internal/usecase/matching"
	profileuc "github.com/venturebridge/venturebridge/internal/usecase/profile"
	verificationuc "github.com/venturebridge/venturebridge/internal/usecase/verification"
	"github.com/venturebridge/venturebridge/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting venturebridge API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_name", cfg.Database.Name),
	)

	ctx := context.Background()

	// Without a database URI the service runs degraded: writes are dropped,
	// reads are empty, and /test reports the missing configuration.
	var store db.Store
	configured := cfg.Database.URI != ""
	if configured {
		mongoStore, err := dbMongo.NewStore(ctx, dbMongo.Config{
			URI:            cfg.Database.URI,
			Database:       cfg.Database.Name,
			ConnectTimeout: time.Duration(cfg.Database.ConnectTimeoutSec) * time.Second,
		})
		if err != nil {
			logger.Fatal("Failed to create document store", zap.Error(err))
		}
		if err := mongoStore.WaitForReady(ctx, time.Duration(cfg.Database.ConnectTimeoutSec)*time.Second); err != nil {
			logger.Fatal("Document store not ready", zap.Error(err))
		}
		logger.Info("Connected to document store")
		store = mongoStore
	} else {
		logger.Warn("No database URI configured, running in degraded mode")
		store = db.NewDisabled()
	}
	defer func() { _ = store.Close(ctx) }()

	// Register matchmaking metrics explicitly (no init())
	metrics.RegisterMatchingMetrics()

	// Create repositories
	profileRepo := profilerepo.New(store)
	chatRepo := chatrepo.New(store)
	verificationRepo := verificationrepo.New(store)
	activityRepo := activityrepo.New(store)

	// Create use case services
	profileSvc := profileuc.New(profileRepo)
	matchingSvc := matchinguc.New(profileRepo, profileRepo).
		WithMetrics(metrics.MatchPairsScoredTotal, metrics.MatchCandidatesReturned)
	chatSvc := chatuc.New(chatRepo)
	verificationSvc := verificationuc.New(verificationRepo)
	authSvc := authuc.New(authuc.Config{
		TokenInfoURL: cfg.Auth.TokenInfoURL,
		Audience:     cfg.Auth.GoogleClientID,
		Timeout:      time.Duration(cfg.Auth.TimeoutSec) * time.Second,
	}).WithActivityLog(activityRepo).WithLogger(logger)
	healthSvc := healthuc.New(store, configured)

	server := httpapi.NewServer(profileSvc, matchingSvc, chatSvc, verificationSvc, authSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
