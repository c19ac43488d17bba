package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/tradehub-app/tradehub/internal/config"
	"github.com/tradehub-app/tradehub/internal/domain/stats"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

const TopicDiscoveryEvents = "discovery.events"

// KafkaProducerClient publishes discovery events for the stats worker.
type KafkaProducerClient struct {
	DiscoveryEventsWriter *kafka.Writer
	logger                logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicDiscoveryEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka producer successfully.")

	return &KafkaProducerClient{
		DiscoveryEventsWriter: writer,
		logger:                log,
	}, nil
}

func (c *KafkaProducerClient) PublishDiscoveryEvent(ctx context.Context, event stats.DiscoveryEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal discovery event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Kind),
		Value: payload,
	}
	if err := c.DiscoveryEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish discovery event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.DiscoveryEventsWriter != nil {
		c.DiscoveryEventsWriter.Close()
	}
}
