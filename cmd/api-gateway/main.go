package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/timetable-api/api/swagger"
	"github.com/noah-isme/timetable-api/internal/handler"
	"github.com/noah-isme/timetable-api/internal/repository"
	"github.com/noah-isme/timetable-api/internal/service"
	"github.com/noah-isme/timetable-api/pkg/cache"
	"github.com/noah-isme/timetable-api/pkg/config"
	"github.com/noah-isme/timetable-api/pkg/database"
	"github.com/noah-isme/timetable-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/requestid"
)

// @title University Timetable API
// @version 1.0.0
// @description Class scheduling engine with conflict detection, greedy room allocation, and prefix search
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

	metrics := service.NewMetricsService()
	scheduler := service.NewSchedulingService(validator.New(), logr, metrics)

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		cacheSvc = service.NewCacheService(cache.NewRedisRepository(redisClient), metrics, cfg.Cache.TTL, logr, true)
	}

	var snapshots *service.SnapshotService
	if cfg.Snapshot.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect postgres", "error", err)
		}
		snapshots = service.NewSnapshotService(scheduler, repository.NewSnapshotRepository(db), logr)
	}

	switch {
	case cfg.Snapshot.Enabled && cfg.Snapshot.LoadOnBoot:
		if err := snapshots.Load(context.Background()); err != nil {
			logr.Sugar().Warnw("snapshot restore failed, starting empty", "error", err)
			seedIfEnabled(cfg, scheduler, logr)
		}
	default:
		seedIfEnabled(cfg, scheduler, logr)
	}

	var exports *service.ExportService
	if cfg.Export.Enabled {
		exports = service.NewExportService(scheduler, logr)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(metrics.GinMiddleware())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.Register(api, handler.Dependencies{
		Scheduler: scheduler,
		Cache:     cacheSvc,
		Exports:   exports,
		Snapshots: snapshots,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func seedIfEnabled(cfg *config.Config, scheduler *service.SchedulingService, logr *zap.Logger) {
	if !cfg.Seed.Enabled {
		return
	}
	if err := scheduler.Seed(); err != nil {
		logr.Sugar().Fatalw("failed to seed sample data", "error", err)
	}
}
