package api

import (
	"context"
	"fmt"

	"servicedesk/internal/app/config"
	"servicedesk/internal/app/dsn"
	"servicedesk/internal/app/handler"
	"servicedesk/internal/app/middleware"
	"servicedesk/internal/app/notify"
	"servicedesk/internal/app/redis"
	"servicedesk/internal/app/report"
	"servicedesk/internal/app/repository"
	"servicedesk/internal/app/service"
	"servicedesk/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "servicedesk/docs"
)

// StartServer собирает все зависимости и запускает HTTP-сервер
func StartServer() {
	logrus.Info("Server start up")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	ctx := context.Background()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatalf("error initializing redis client: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Fatalf("error initializing MinIO client: %v", err)
	}

	// Телеграм-шлюз: при пустом токене уведомления выключены
	telegram, err := notify.NewTelegram(cfg.Telegram.BotToken, repo)
	if err != nil {
		logrus.Fatalf("error initializing telegram gateway: %v", err)
	}
	go func() {
		if err := telegram.Run(ctx); err != nil {
			logrus.Errorf("telegram bot stopped: %v", err)
		}
	}()

	reports := report.NewService(minioClient)

	appeals := service.NewAppealService(repo, telegram, reports, cfg.Appeals.StrictTransitions)
	clients := service.NewClientService(repo)
	staff := service.NewStaffService(repo)
	admins := service.NewAdminService(repo)
	info := service.NewInfoService(repo)
	auth := service.NewAuthService(repo, cfg)

	h := handler.NewHandler(appeals, clients, staff, admins, info, reports, minioClient)
	authHandler := handler.NewAuthHandler(auth, repo, redisClient, cfg)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h.RegisterAPIRoutes(r, authHandler, authMiddleware)

	// Swagger документация
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddress := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := r.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
