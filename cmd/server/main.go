package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradehub-app/tradehub/adapters/event"
	httpAdapter "github.com/tradehub-app/tradehub/adapters/http"
	"github.com/tradehub-app/tradehub/adapters/persistence"
	discoveryUC "github.com/tradehub-app/tradehub/internal/application/usecase/discovery"
	statsUC "github.com/tradehub-app/tradehub/internal/application/usecase/stats"
	"github.com/tradehub-app/tradehub/internal/config"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

func main() {
	fmt.Println("Start TradeHub API Server...")

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	listingRepo := persistence.NewPostgresListingRepo(dbPool, appLogger)
	cityStatsRepo := persistence.NewRedisCityStatsRepo(redisClient, appLogger)

	// Templates
	templates, err := template.ParseGlob(cfg.Web.TemplatesGlob)
	if err != nil {
		appLogger.Fatal("cannot parse templates", err)
	}

	// Use Cases
	discoveryUseCase := discoveryUC.NewDiscoveryUseCase(listingRepo, kafkaClient, appLogger, cfg.DB.AcquireTimeout)
	popularCitiesUseCase := statsUC.NewPopularCitiesUseCase(cityStatsRepo, appLogger)

	// HTTP Handlers
	listingHandler := httpAdapter.NewListingHandler(discoveryUseCase, templates, appLogger)
	statsHandler := httpAdapter.NewStatsHandler(popularCitiesUseCase, appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	router.Static("/static", cfg.Web.StaticDir)

	router.GET("/", listingHandler.Index)
	router.GET("/search", listingHandler.Search)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/city-listings", listingHandler.CityListings)
		api.GET("/popular-cities", statsHandler.PopularCities)
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
