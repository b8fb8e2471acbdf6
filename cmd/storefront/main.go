package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

const (
	envHTTPAddr       = "STOREFRONT_HTTP_ADDR"
	envMetricsAddr    = "STOREFRONT_METRICS_ADDR"
	envStorageDriver  = "STOREFRONT_STORAGE_DRIVER"
	envMongoURI       = "STOREFRONT_MONGO_URI"
	envMongoDatabase  = "STOREFRONT_MONGO_DB"
	envMongoAutoIndex = "STOREFRONT_MONGO_AUTO_INDEX"
	envKafkaBrokers   = "STOREFRONT_KAFKA_BROKERS"
)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// lookupFunc абстрагирует доступ к переменным окружения для тестируемости.
type lookupFunc func(key string) (string, bool)

// readConfigFromEnv формирует конфигурацию приложения, позволяя переопределить
// настройки через переменные окружения. Некорректные значения не прерывают
// запуск, а возвращаются предупреждениями.
func readConfigFromEnv(lookup lookupFunc) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	if v, ok := lookup(envHTTPAddr); ok && strings.TrimSpace(v) != "" {
		cfg.HTTPAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMetricsAddr); ok && strings.TrimSpace(v) != "" {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	if v, ok := lookup(envStorageDriver); ok && strings.TrimSpace(v) != "" {
		driver := app.StorageDriver(strings.ToLower(strings.TrimSpace(v)))
		switch driver {
		case app.StorageDriverMemory, app.StorageDriverMongo:
			cfg.StorageDriver = driver
		default:
			warnings = append(warnings, fmt.Sprintf("%s: unsupported driver %q, keeping %q", envStorageDriver, v, cfg.StorageDriver))
		}
	}
	if v, ok := lookup(envMongoURI); ok && strings.TrimSpace(v) != "" {
		cfg.MongoURI = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMongoDatabase); ok && strings.TrimSpace(v) != "" {
		cfg.MongoDatabase = strings.TrimSpace(v)
	}
	if v, ok := lookup(envMongoAutoIndex); ok && strings.TrimSpace(v) != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			cfg.MongoAutoIndex = true
		case "0", "false", "no", "off":
			cfg.MongoAutoIndex = false
		default:
			warnings = append(warnings, fmt.Sprintf("%s: cannot parse %q as bool, keeping %v", envMongoAutoIndex, v, cfg.MongoAutoIndex))
		}
	}
	if v, ok := lookup(envKafkaBrokers); ok {
		cfg.KafkaBrokers = strings.TrimSpace(v)
	}

	return cfg, warnings
}

func main() {
	setupLogger()

	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.HTTPAddr,
		"metrics_addr": cfg.MetricsAddr,
		"storage":      cfg.StorageDriver,
		"version":      version.String(),
	}).Info("запускаем storefront")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("storefront остановлен")
}
