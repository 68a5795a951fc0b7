package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost     string
	ServicePort     int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	LoginRate       RateConfig
	JWT             JWTConfig
	Redis           RedisConfig
	MinIO           MinIOConfig
}

// RateConfig ограничение частоты запросов с одного IP
type RateConfig struct {
	PerMinute int
	Burst     int
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// MinIOConfig хранилище резервных копий; пустой Endpoint отключает бэкапы
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

const (
	envJWTSecret = "JWT_SECRET"

	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("ShutdownTimeout", "10s")
	v.SetDefault("CORSOrigins", []string{"*"})
	v.SetDefault("LoginRate.PerMinute", 10)
	v.SetDefault("LoginRate.Burst", 5)
	v.SetDefault("JWT.ExpiresIn", "12h")

	err = v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// секрет JWT только из окружения
	cfg.JWT.Token = os.Getenv(envJWTSecret)
	if cfg.JWT.Token == "" {
		return nil, errors.New(envJWTSecret + " is not set")
	}
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	// инициализация Redis конфигурации из env
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	cfg.MinIO = MinIOFromEnv()

	log.Info("config parsed")

	return cfg, nil
}

// MinIOFromEnv читает параметры MinIO из окружения (используется и в cmd/backup)
func MinIOFromEnv() MinIOConfig {
	cfg := MinIOConfig{
		Endpoint:  os.Getenv(envMinIOEndpoint),
		AccessKey: os.Getenv(envMinIOAccessKey),
		SecretKey: os.Getenv(envMinIOSecretKey),
		Bucket:    os.Getenv(envMinIOBucket),
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "backups"
	}
	cfg.UseSSL, _ = strconv.ParseBool(os.Getenv(envMinIOUseSSL))
	return cfg
}
