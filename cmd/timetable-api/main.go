package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/personatable/timetable-api/api/swagger"
	"github.com/personatable/timetable-api/internal/handler"
	"github.com/personatable/timetable-api/internal/middleware"
	"github.com/personatable/timetable-api/internal/repository"
	"github.com/personatable/timetable-api/internal/service"
	"github.com/personatable/timetable-api/migrations"
	"github.com/personatable/timetable-api/pkg/cache"
	"github.com/personatable/timetable-api/pkg/config"
	"github.com/personatable/timetable-api/pkg/database"
	"github.com/personatable/timetable-api/pkg/logger"
	corsmiddleware "github.com/personatable/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/personatable/timetable-api/pkg/middleware/requestid"
)

// @title Timetable API
// @version 1.0.0
// @description Constraint-based weekly timetable placement service
// @BasePath /api/v1
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		logr.Sugar().Fatalw("failed to run migrations", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
		}
	}

	settingsRepo := repository.NewSettingsRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	validate := validator.New()

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		JWTSecret:         cfg.Auth.JWTSecret,
		TokenExpiry:       cfg.Auth.TokenExpiry,
		AdminEmail:        cfg.Auth.AdminEmail,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
	})
	settingsSvc := service.NewSettingsService(settingsRepo, instructorRepo, cacheSvc, validate, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, courseRepo, settingsRepo, cacheSvc, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, instructorRepo, settingsRepo, validate, logr)
	timetableSvc := service.NewTimetableService(settingsRepo, instructorRepo, courseRepo, scheduleRepo, db, cacheSvc, metricsSvc, logr)
	transferSvc := service.NewTransferService(settingsRepo, instructorRepo, courseRepo, scheduleRepo, db, cacheSvc, logr)
	exportSvc := service.NewExportService(settingsRepo, instructorRepo, courseRepo, scheduleRepo, cfg.Export.PDFTitle, logr, nil, nil)

	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Settings:   handler.NewSettingsHandler(settingsSvc),
		Instructor: handler.NewInstructorHandler(instructorSvc),
		Course:     handler.NewCourseHandler(courseSvc),
		Timetable:  handler.NewTimetableHandler(timetableSvc),
		Transfer:   handler.NewTransferHandler(transferSvc),
		Export:     handler.NewExportHandler(exportSvc),
		Metrics:    handler.NewMetricsHandler(metricsSvc, db),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, cfg.APIPrefix, handlers, authSvc)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
