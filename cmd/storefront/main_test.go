package main

import (
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/app"
)

func mapLookup(values map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestReadConfigFromEnv_Defaults(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(nil))

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %d", len(warnings))
	}
	if cfg != app.DefaultConfig() {
		t.Fatalf("expected default config, got %#v", cfg)
	}
}

func TestReadConfigFromEnv_ValidOverrides(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(map[string]string{
		envHTTPAddr:       "localhost:8081",
		envMetricsAddr:    "localhost:9091",
		envStorageDriver:  " MoNgO ",
		envMongoURI:       " mongodb://localhost:27017 ",
		envMongoDatabase:  "storefront_dev",
		envMongoAutoIndex: "off",
		envKafkaBrokers:   "localhost:9092,localhost:9093",
	}))

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %d: %v", len(warnings), warnings)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != "localhost:9091" {
		t.Fatalf("unexpected metrics addr: %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != app.StorageDriverMongo {
		t.Fatalf("unexpected storage driver: %s", cfg.StorageDriver)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Fatalf("unexpected mongo uri: %s", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "storefront_dev" {
		t.Fatalf("unexpected mongo db: %s", cfg.MongoDatabase)
	}
	if cfg.MongoAutoIndex {
		t.Fatal("expected MongoAutoIndex to be disabled")
	}
	if cfg.KafkaBrokers != "localhost:9092,localhost:9093" {
		t.Fatalf("unexpected kafka brokers: %s", cfg.KafkaBrokers)
	}
}

func TestReadConfigFromEnv_InvalidValuesProduceWarnings(t *testing.T) {
	cfg, warnings := readConfigFromEnv(mapLookup(map[string]string{
		envStorageDriver:  "cassandra",
		envMongoAutoIndex: "maybe",
	}))

	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if cfg.StorageDriver != app.StorageDriverMemory {
		t.Fatalf("invalid driver must keep default, got %s", cfg.StorageDriver)
	}
	if !cfg.MongoAutoIndex {
		t.Fatal("invalid bool must keep default true")
	}
}
