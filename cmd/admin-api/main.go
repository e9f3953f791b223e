package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mashkanta-digital/admin-api/api/swagger"
	"github.com/mashkanta-digital/admin-api/internal/handler"
	"github.com/mashkanta-digital/admin-api/internal/middleware"
	"github.com/mashkanta-digital/admin-api/internal/repository"
	"github.com/mashkanta-digital/admin-api/internal/service"
	"github.com/mashkanta-digital/admin-api/pkg/cache"
	"github.com/mashkanta-digital/admin-api/pkg/config"
	"github.com/mashkanta-digital/admin-api/pkg/database"
	"github.com/mashkanta-digital/admin-api/pkg/export"
	"github.com/mashkanta-digital/admin-api/pkg/jobs"
	"github.com/mashkanta-digital/admin-api/pkg/logger"
	corsmiddleware "github.com/mashkanta-digital/admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/mashkanta-digital/admin-api/pkg/middleware/requestid"
)

// @title Mashkanta Admin API
// @version 1.0.0
// @description Admin dashboard backend: meeting scheduling, availability and calendar views
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
			redisClient = nil
		}
	}

	validate := validator.New()

	meetingRepo := repository.NewMeetingRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	snapshotCache := repository.NewSnapshotCache(redisClient, cfg.Scheduling.SnapshotCacheTTL, logr)

	metricsSvc := service.NewMetricsService()

	var notifications *service.NotificationService
	notifyQueue := jobs.NewQueue("notifications", func(ctx context.Context, job jobs.Job) error {
		return notifications.HandleJob(ctx, job)
	}, jobs.QueueConfig{
		Workers:    cfg.Notify.Workers,
		MaxRetries: cfg.Notify.MaxRetries,
		RetryDelay: cfg.Notify.RetryDelay,
		Logger:     logr,
	})
	notifications = service.NewNotificationService(templateRepo, service.LogSender{Logger: logr}, notifyQueue, logr)

	availabilitySvc := service.NewAvailabilityService(settingsRepo, snapshotCache, validate, logr)
	meetingSvc := service.NewMeetingService(meetingRepo, availabilitySvc, notifications, metricsSvc, validate, logr)
	calendarSvc := service.NewCalendarService(meetingRepo, availabilitySvc, export.NewSchedulePDF(), service.CalendarServiceConfig{
		ClusteredLayout: cfg.Scheduling.ClusteredLayout,
	}, logr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notifyQueue.Start(ctx)
	defer notifyQueue.Stop()

	meetingHandler := handler.NewMeetingHandler(meetingSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	holidayHandler := handler.NewHolidayHandler()
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/meetings", meetingHandler.List)
		api.POST("/meetings", meetingHandler.Schedule)
		api.DELETE("/meetings/:id", meetingHandler.Delete)

		api.GET("/availability", availabilityHandler.Get)
		api.PUT("/availability", availabilityHandler.Update)
		api.POST("/availability/exceptions", availabilityHandler.CreateException)
		api.DELETE("/availability/exceptions/:id", availabilityHandler.DeleteException)

		api.GET("/calendar/day", calendarHandler.Day)
		api.GET("/calendar/day/export", calendarHandler.ExportDay)
		api.GET("/calendar/week", calendarHandler.Week)
		api.GET("/calendar/month", calendarHandler.Month)

		api.GET("/holidays", holidayHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
