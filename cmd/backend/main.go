package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"backoffice/internal/app/backup"
	"backoffice/internal/app/config"
	"backoffice/internal/app/dsn"
	"backoffice/internal/app/handler"
	"backoffice/internal/app/redis"
	"backoffice/internal/app/repository"
	"backoffice/internal/app/storage"
	"backoffice/internal/pkg"

	"github.com/sirupsen/logrus"
)

// @title Back-office API
// @version 1.0
// @description Процессы, партнёры, клиенты, заказы и платежи
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logrus.Info("App start")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer repo.Close()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatalf("error initializing redis: %v", err)
	}
	defer redisClient.Close()

	var backups *backup.Service
	if cfg.MinIO.Enabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			logrus.Fatalf("error initializing minio: %v", err)
		}
		backups = backup.NewService(repo.DB(), minioClient)
	} else {
		logrus.Warn("MINIO_ENDPOINT is not set, backups disabled")
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, backups, authHandler)

	application := pkg.NewApp(cfg, pkg.NewRouter(cfg), apiHandler)
	if err := application.RunApp(ctx); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("App terminated")
}
