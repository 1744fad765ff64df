package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DeliveryCodeModeStatic = "static"
	DeliveryCodeModeRedis  = "redis"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBDriver   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DeliveryCodeMode   string
	StaticDeliveryCode string
	DeliveryCodeTTL    time.Duration
	DeliveryCodeStream string

	StoreName     string
	StoreCurrency string

	SummaryJobSchedule string
	LogLevel           slog.Level
}

// DSN is accepted by both the pgx and the lib/pq drivers.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment, after loading .env if the file exists.
// Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", ""),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		DBDriver:           getEnv("DB_DRIVER", "pgx"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		DeliveryCodeMode:   strings.ToLower(getEnv("DELIVERY_CODE_MODE", DeliveryCodeModeStatic)),
		StaticDeliveryCode: getEnv("STATIC_DELIVERY_CODE", ""),
		DeliveryCodeStream: getEnv("DELIVERY_CODE_STREAM", "delivery-codes"),
		StoreName:          getEnv("STORE_NAME", ""),
		StoreCurrency:      getEnv("STORE_CURRENCY", "NGN"),
		SummaryJobSchedule: getEnv("SUMMARY_JOB_SCHEDULE", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return Config{}, fmt.Errorf("REDIS_DB: %w", err)
	}

	if cfg.DeliveryCodeTTL, err = time.ParseDuration(getEnv("DELIVERY_CODE_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("DELIVERY_CODE_TTL: %w", err)
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.DBUser == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if c.StoreName == "" {
		errs = append(errs, errors.New("STORE_NAME is required"))
	}

	switch c.DeliveryCodeMode {
	case DeliveryCodeModeStatic, DeliveryCodeModeRedis:
	default:
		errs = append(errs, fmt.Errorf("DELIVERY_CODE_MODE %q is not one of static, redis", c.DeliveryCodeMode))
	}

	if c.DeliveryCodeTTL <= 0 {
		errs = append(errs, errors.New("DELIVERY_CODE_TTL must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
