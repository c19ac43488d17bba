package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tradehub-app/tradehub/adapters/event"
	"github.com/tradehub-app/tradehub/adapters/persistence"
	"github.com/tradehub-app/tradehub/internal/config"
	"github.com/tradehub-app/tradehub/internal/domain/stats"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

func main() {
	fmt.Println("Starting TradeHub Stats Worker...")

	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// Redis
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	cityStatsRepo := persistence.NewRedisCityStatsRepo(redisClient, appLogger)

	// Kafka Consumer
	discoveryConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicDiscoveryEvents,
		GroupID:  "city-stats-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer discoveryConsumer.Close()

	appLogger.Info("Worker listening on topic '" + event.TopicDiscoveryEvents + "'...")

	ctx := context.Background()
	for {
		msg, err := discoveryConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message", err)
			continue
		}

		var evt stats.DiscoveryEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Warn("skipping undecodable discovery event", zap.Error(err))
			continue
		}

		if evt.City == "" {
			continue
		}
		if err := cityStatsRepo.IncrementCityViews(ctx, evt.City); err != nil {
			appLogger.Error("failed to update city stats", err, zap.String("city", evt.City))
		}
	}
}
