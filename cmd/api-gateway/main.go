package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/students-api/api/swagger"
	"github.com/noah-isme/students-api/internal/handler"
	"github.com/noah-isme/students-api/internal/repository"
	"github.com/noah-isme/students-api/internal/service"
	"github.com/noah-isme/students-api/pkg/config"
	"github.com/noah-isme/students-api/pkg/database"
	"github.com/noah-isme/students-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Students API
// @version 1.0.0
// @description Registers students and lists the active ones.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	swagger.SetAPIPrefix(cfg.APIPrefix)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	metrics := service.NewMetricsService()
	studentRepo := repository.NewStudentRepository(db, metrics)
	studentService := service.NewStudentService(studentRepo)

	router := handler.NewRouter(handler.RouterDeps{
		Config:   cfg,
		Logger:   logr,
		Metrics:  metrics,
		Students: handler.NewStudentHandler(studentService, cfg.Pagination.DefaultSize, logr),
		System:   handler.NewSystemHandler(metrics, studentRepo),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "api_prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	case <-ctx.Done():
		logr.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
