package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/Marketplace/pkg/config"
	"github.com/NeuralTrust/Marketplace/pkg/dependency_container"
	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/Marketplace/pkg/infra/logger"
	_ "github.com/NeuralTrust/Marketplace/pkg/infra/migrations"
	"github.com/NeuralTrust/Marketplace/pkg/infra/prometheus"
	"github.com/NeuralTrust/Marketplace/pkg/server"
	"github.com/NeuralTrust/Marketplace/pkg/server/router"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger, logCloser, err := infraLogger.NewLogger(infraLogger.OptionsFromEnv())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logCloser.Close()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()
	securityCfg := config.LoadSecurityConfig(nil)
	logger.WithField("security", securityCfg).Info("injection detection configured")

	if cfg.Metrics.Enabled {
		prometheus.Initialize()
	}

	db, err := database.NewDB(logger, &database.Config{
		Kind:     cfg.Database.Kind,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:      cfg,
		Security: securityCfg,
		Logger:   logger,
		DB:       db,
	})
	if err != nil {
		logger.Fatalf("failed to build dependencies: %v", err)
	}

	srv := server.NewMarketplaceServer(server.MarketplaceServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewMarketplaceRouter(container.MiddlewareTransport, container.HandlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
