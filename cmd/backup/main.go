package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/app/backup"
	"backoffice/internal/app/config"
	"backoffice/internal/app/dsn"
	"backoffice/internal/app/repository"
	"backoffice/internal/app/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	mode := pflag.StringP("mode", "m", "export", "export, import или list")
	prefix := pflag.StringP("prefix", "p", "", "префикс копии (для export по умолчанию текущее время)")
	dir := pflag.StringP("dir", "d", "", "локальная директория вместо MinIO")
	pflag.Parse()

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	store, err := openStore(ctx, *dir)
	if err != nil {
		logrus.Fatal(err)
	}
	service := backup.NewService(repo.DB(), store)

	if *mode == "list" {
		prefixes, err := service.Prefixes(ctx)
		if err != nil {
			logrus.Fatal(err)
		}
		for _, p := range prefixes {
			fmt.Println(p)
		}
		return
	}

	var counts map[string]int
	switch *mode {
	case "export":
		if *prefix == "" {
			*prefix = time.Now().UTC().Format("20060102T150405Z")
		}
		counts, err = service.Export(ctx, *prefix)
	case "import":
		if *prefix == "" {
			logrus.Fatal("--prefix is required for import")
		}
		counts, err = service.Import(ctx, *prefix)
	default:
		logrus.Fatalf("unknown mode %q", *mode)
	}
	if err != nil {
		logrus.Fatal(err)
	}

	for _, table := range backup.Tables() {
		fmt.Printf("%-20s %d\n", table, counts[table])
	}
}

func openStore(ctx context.Context, dir string) (backup.Store, error) {
	if dir != "" {
		return backup.DirStore{Root: dir}, nil
	}

	cfg := config.MinIOFromEnv()
	if !cfg.Enabled() {
		return nil, fmt.Errorf("MINIO_ENDPOINT is not set, use --dir for a local backup")
	}
	return storage.NewMinIOClient(ctx, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Bucket, cfg.UseSSL)
}
