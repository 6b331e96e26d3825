package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ojekin/dispatch/internal/pkg/config"
	"github.com/ojekin/dispatch/internal/pkg/database"
	"github.com/ojekin/dispatch/internal/pkg/health"
	"github.com/ojekin/dispatch/internal/pkg/logger"
	"github.com/ojekin/dispatch/internal/pkg/middleware"
	"github.com/ojekin/dispatch/internal/pkg/nats"
	"github.com/ojekin/dispatch/internal/pkg/server"
	"github.com/ojekin/dispatch/internal/pkg/websocket"
	dispatchgw "github.com/ojekin/dispatch/services/dispatch/gateway"
	dispatchrepo "github.com/ojekin/dispatch/services/dispatch/repository"
	dispatchuc "github.com/ojekin/dispatch/services/dispatch/usecase"
	presencegw "github.com/ojekin/dispatch/services/presence/gateway"
	presencehandler "github.com/ojekin/dispatch/services/presence/handler/http"
	presencerepo "github.com/ojekin/dispatch/services/presence/repository"
	presenceuc "github.com/ojekin/dispatch/services/presence/usecase"
	ridesgw "github.com/ojekin/dispatch/services/rides/gateway"
	ridehandler "github.com/ojekin/dispatch/services/rides/handler/http"
	wshandler "github.com/ojekin/dispatch/services/rides/handler/websocket"
	ridesrepo "github.com/ojekin/dispatch/services/rides/repository"
	ridesuc "github.com/ojekin/dispatch/services/rides/usecase"
	schedulerrepo "github.com/ojekin/dispatch/services/scheduler/repository"
	scheduleruc "github.com/ojekin/dispatch/services/scheduler/usecase"
)

func main() {
	appName := "dispatch"
	configs := config.InitConfig("config/dispatch.env")

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	wsManager := websocket.NewManager(configs.JWT)

	// Repositories
	rideRepo := ridesrepo.NewRideRepository(configs, postgresClient.GetDB())
	bookingRepo := ridesrepo.NewBookingRepository(configs, postgresClient.GetDB())
	presenceRepo := presencerepo.NewPresenceRepository(configs, redisClient)
	offerRepo := dispatchrepo.NewOfferRepository(configs, redisClient)
	schedulerRepo := schedulerrepo.NewSchedulerRepository(configs, postgresClient.GetDB())

	// Gateways
	rideGW := ridesgw.NewRideGW(natsClient, wsManager)
	dispatchGW := dispatchgw.NewDispatchGW(natsClient, wsManager)
	presenceGW := presencegw.NewPresenceGW(natsClient, wsManager)

	// Usecases. The offer coordinator reads candidates from the presence
	// index and writes canonical status through the ride repository.
	dispatchUC := dispatchuc.NewDispatchUC(configs, offerRepo, presenceRepo, rideRepo, dispatchGW)
	rideUC := ridesuc.NewRideUC(configs, rideRepo, bookingRepo, dispatchUC, rideGW)
	presenceUC := presenceuc.NewPresenceUC(configs, presenceRepo, rideRepo, presenceGW)
	poller := scheduleruc.NewPoller(configs, schedulerRepo, dispatchUC)

	pollerCtx, stopPoller := context.WithCancel(context.Background())
	defer stopPoller()
	go poller.Run(pollerCtx)

	// HTTP and WebSocket transport
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware())

	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	rideHandler := ridehandler.NewRideHandler(rideUC, dispatchUC)
	rideHandler.RegisterRoutes(e)

	presenceHandler := presencehandler.NewPresenceHandler(presenceUC)
	presenceHandler.RegisterRoutes(e)

	wsHandler := wshandler.NewWebSocketHandler(presenceUC, dispatchUC, wsManager)
	wsHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
