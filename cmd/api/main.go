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

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sicei-api/api/swagger"
	"github.com/noah-isme/sicei-api/internal/handler"
	internalmiddleware "github.com/noah-isme/sicei-api/internal/middleware"
	"github.com/noah-isme/sicei-api/internal/repository"
	"github.com/noah-isme/sicei-api/internal/service"
	"github.com/noah-isme/sicei-api/pkg/cache"
	"github.com/noah-isme/sicei-api/pkg/config"
	"github.com/noah-isme/sicei-api/pkg/database"
	"github.com/noah-isme/sicei-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sicei-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sicei-api/pkg/middleware/requestid"
	"github.com/noah-isme/sicei-api/pkg/notify"
	"github.com/noah-isme/sicei-api/pkg/storage"
)

// @title SICEI API
// @version 1.0.0
// @description Student and professor records with sessions, profile photos and notifications.
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

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		logr.Fatal("failed to prepare schema", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db, metricsSvc)
	professorRepo := repository.NewProfessorRepository(db, metricsSvc)

	sessionSvc := service.NewSessionService(studentRepo, nil, validate, metricsSvc, logr)
	if rdb != nil {
		sessionRepo := repository.NewSessionRepository(rdb, cfg.Sessions.KeyPrefix, cfg.Sessions.TTL, logr)
		sessionSvc = service.NewSessionService(studentRepo, sessionRepo, validate, metricsSvc, logr)
	} else {
		logr.Warn("redis disabled, session endpoints will report unavailable")
	}

	photoCfg := service.PhotoServiceConfig{MaxFileSize: cfg.Photos.MaxFileSizeBytes}
	photoSvc := service.NewPhotoService(studentRepo, nil, metricsSvc, logr, photoCfg)
	mediaDir := ""
	if cfg.Photos.Enabled {
		photoStore, err := storage.NewLocalStorage(cfg.Photos.StorageDir, cfg.Photos.PublicBaseURL)
		if err != nil {
			logr.Fatal("failed to prepare photo storage", zap.Error(err))
		}
		photoSvc = service.NewPhotoService(studentRepo, photoStore, metricsSvc, logr, photoCfg)
		mediaDir = photoStore.Dir()
	}

	publisher, err := notify.New(cfg.Notifications, rdb)
	if err != nil {
		logr.Fatal("failed to configure notifications", zap.Error(err))
	}
	notificationSvc := service.NewNotificationService(studentRepo, publisher, metricsSvc, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	handler.RegisterRoutes(r, handler.Handlers{
		Students:      handler.NewStudentHandler(service.NewStudentService(studentRepo, logr)),
		Professors:    handler.NewProfessorHandler(service.NewProfessorService(professorRepo, logr)),
		Sessions:      handler.NewSessionHandler(sessionSvc),
		Photos:        handler.NewPhotoHandler(photoSvc, cfg.Photos.MaxFileSizeBytes),
		Notifications: handler.NewNotificationHandler(notificationSvc),
		Metrics:       handler.NewMetricsHandler(metricsSvc, db),
	}, handler.RouteOptions{
		APIPrefix:     cfg.APIPrefix,
		LegacyAliases: cfg.Aliases.LegacyEnabled,
		MediaDir:      mediaDir,
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "db_driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logr.Info("server stopped")
}
