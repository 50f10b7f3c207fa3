package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rickshawlabs/dispatch/internal/pkg/config"
	"github.com/rickshawlabs/dispatch/internal/pkg/database"
	"github.com/rickshawlabs/dispatch/internal/pkg/health"
	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/middleware"
	natspkg "github.com/rickshawlabs/dispatch/internal/pkg/nats"
	"github.com/rickshawlabs/dispatch/internal/pkg/server"
	wspkg "github.com/rickshawlabs/dispatch/internal/pkg/websocket"
	geoGateway "github.com/rickshawlabs/dispatch/services/geo/gateway"
	geoHandler "github.com/rickshawlabs/dispatch/services/geo/handler"
	geoRepository "github.com/rickshawlabs/dispatch/services/geo/repository"
	geoUsecase "github.com/rickshawlabs/dispatch/services/geo/usecase"
	notifyHandler "github.com/rickshawlabs/dispatch/services/notify/handler"
	notifyWS "github.com/rickshawlabs/dispatch/services/notify/handler/websocket"
	"github.com/rickshawlabs/dispatch/services/notify/relay"
	rideGateway "github.com/rickshawlabs/dispatch/services/rides/gateway"
	rideHandler "github.com/rickshawlabs/dispatch/services/rides/handler"
	rideRepository "github.com/rickshawlabs/dispatch/services/rides/repository"
	rideUsecase "github.com/rickshawlabs/dispatch/services/rides/usecase"
)

const appName = "dispatch"

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	// Geo service
	geoRepo := geoRepository.NewGeoRepository(redisClient)
	geoGW := geoGateway.NewGeoGW(natsClient)
	geoUC := geoUsecase.NewGeoUC(configs, geoRepo, geoGW)

	// Rides service; the geo usecase doubles as the online driver pool
	rideRepo := rideRepository.NewRideRepository(configs, postgresClient.DB)
	rideGW := rideGateway.NewRideGW(natsClient)
	rideUC := rideUsecase.NewRideUC(configs, rideRepo, rideGW, geoUC)

	// Notification relay: NATS fan-in, WebSocket fan-out
	notifyRelay := relay.NewRelay(configs.Notify.QueueSize)
	natsConsumer := notifyHandler.NewNatsHandler(natsClient, notifyRelay)
	if err := natsConsumer.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

	wsManager := wspkg.NewManager(configs.JWT)
	wsHandler := notifyWS.NewWebSocketHandler(wsManager, notifyRelay)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterReadinessEndpoints(e, appName, healthService)

	geoHandler.NewHandler(geoUC).RegisterRoutes(e)
	rideHandler.NewHandler(rideUC).RegisterRoutes(e)
	e.GET("/ws", wsHandler.HandleWebSocket)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(ctx context.Context) error {
		natsConsumer.Close()
		natsClient.Close()
		return nil
	})
	shutdown.Register(func(ctx context.Context) error { return redisClient.Close() })
	shutdown.Register(func(ctx context.Context) error { return postgresClient.Close() })

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown incomplete", zap.Error(err))
	}
}
