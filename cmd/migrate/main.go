package main

import (
	"context"
	"os"

	"backoffice/internal/app/dsn"
	"backoffice/internal/app/handler"
	"backoffice/internal/app/migrations"
	"backoffice/internal/app/repository"
	"backoffice/internal/app/role"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	rollback := pflag.Bool("rollback", false, "откатить последнюю миграцию")
	pflag.Parse()

	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	if *rollback {
		if err := migrations.RollbackLast(repo.DB()); err != nil {
			logrus.Fatalf("Failed to roll back: %v", err)
		}
		return
	}

	if err := migrations.Migrate(repo.DB()); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// Администратор из окружения (регистрация через API создаёт только операторов)
	login, password := os.Getenv("ADMIN_LOGIN"), os.Getenv("ADMIN_PASSWORD")
	if login == "" || password == "" {
		logrus.Info("ADMIN_LOGIN/ADMIN_PASSWORD not set, admin not seeded")
		return
	}

	hash, err := handler.HashPassword(password)
	if err != nil {
		logrus.Fatal(err)
	}
	admin, err := repo.EnsureUser(context.Background(), login, hash, "Administrator", role.Admin)
	if err != nil {
		logrus.Fatalf("Failed to seed admin: %v", err)
	}
	logrus.WithField("login", admin.Login).Info("admin ensured")
}
