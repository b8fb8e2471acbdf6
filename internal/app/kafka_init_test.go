package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestInitKafkaProducer_EmptyBrokers(t *testing.T) {
	producer, err := initKafkaProducer("", log.WithField("test", "kafka"))
	if err != nil {
		t.Fatalf("empty brokers must not fail: %v", err)
	}
	if producer != nil {
		t.Fatal("expected nil producer when brokers are not configured")
	}
}

func TestCloseKafka_NilProducer(t *testing.T) {
	// Не должно паниковать.
	closeKafka(nil, log.WithField("test", "kafka"))
}
