package kafka

import (
	"github.com/IBM/sarama"
)

const (
	BookingEventsTopic = "booking-events"
)

type Config struct {
	Addrs    []string `envconfig:"KAFKA_ADDRS"`
	ClientID string   `envconfig:"KAFKA_CLIENT_ID" default:"shareit"`
}

// Enabled reports whether kafka publishing is configured at all.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.ClientID = cfg.ClientID
	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
