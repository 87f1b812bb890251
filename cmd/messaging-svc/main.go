package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/wire"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	app, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	logger := app.Logger
	defer func() { _ = logger.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go app.Limiter.RunCleanup(ctx)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", app.Config.Server.Host, app.Config.Server.Port),
		Handler:        setupRouter(app),
		ReadTimeout:    time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(app.Config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", server.Addr), zap.String("env", app.Config.Server.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := app.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server gracefully stopped")
}

func setupRouter(app *wire.Application) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.CORSMiddleware)
	router.Use(common.LoggingMiddleware(app.Logger))

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)
	router.Handle("/metrics", app.Metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)
	app.UserHandler.RegisterPublic(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(common.AuthMiddleware(app.Tokens, app.Logger))

	// sending is the only rate limited route; it must be matched before the chat handler's own POST /messages
	if app.Config.RateLimit.Enabled {
		protected.Handle("/messages", app.Limiter.Middleware()(http.HandlerFunc(app.ChatHandler.SendMessage))).
			Methods(http.MethodPost)
	}
	app.ChatHandler.Register(protected)
	app.NotificationHandler.Register(protected)
	app.UserHandler.RegisterProtected(protected)

	return router
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "gomessaging"})
}
