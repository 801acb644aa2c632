package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/caronalabs/carona/internal/pkg/config"
	"github.com/caronalabs/carona/internal/pkg/database"
	"github.com/caronalabs/carona/internal/pkg/health"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/middleware"
	natspkg "github.com/caronalabs/carona/internal/pkg/nats"
	"github.com/caronalabs/carona/internal/pkg/server"

	addressHTTP "github.com/caronalabs/carona/services/addresses/handler/http"
	addressRepository "github.com/caronalabs/carona/services/addresses/repository"
	addressUsecase "github.com/caronalabs/carona/services/addresses/usecase"
	locationGateway "github.com/caronalabs/carona/services/location/gateway"
	messageGateway "github.com/caronalabs/carona/services/messages/gateway"
	messageHTTP "github.com/caronalabs/carona/services/messages/handler/http"
	messageRepository "github.com/caronalabs/carona/services/messages/repository"
	messageUsecase "github.com/caronalabs/carona/services/messages/usecase"
	"github.com/caronalabs/carona/services/notify/email"
	notifyHandler "github.com/caronalabs/carona/services/notify/handler"
	reservationGateway "github.com/caronalabs/carona/services/reservations/gateway"
	reservationHTTP "github.com/caronalabs/carona/services/reservations/handler/http"
	reservationRepository "github.com/caronalabs/carona/services/reservations/repository"
	reservationUsecase "github.com/caronalabs/carona/services/reservations/usecase"
	reviewGateway "github.com/caronalabs/carona/services/reviews/gateway"
	reviewHTTP "github.com/caronalabs/carona/services/reviews/handler/http"
	reviewRepository "github.com/caronalabs/carona/services/reviews/repository"
	reviewUsecase "github.com/caronalabs/carona/services/reviews/usecase"
	rideGateway "github.com/caronalabs/carona/services/rides/gateway"
	rideHTTP "github.com/caronalabs/carona/services/rides/handler/http"
	rideRepository "github.com/caronalabs/carona/services/rides/repository"
	rideUsecase "github.com/caronalabs/carona/services/rides/usecase"
	userGateway "github.com/caronalabs/carona/services/users/gateway"
	userHTTP "github.com/caronalabs/carona/services/users/handler/http"
	userRepository "github.com/caronalabs/carona/services/users/repository"
	userUsecase "github.com/caronalabs/carona/services/users/usecase"
	vehicleHTTP "github.com/caronalabs/carona/services/vehicles/handler/http"
	vehicleRepository "github.com/caronalabs/carona/services/vehicles/repository"
	vehicleUsecase "github.com/caronalabs/carona/services/vehicles/usecase"
)

func main() {
	appName := "carona-api"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Repositories
	userRepo := userRepository.NewUserRepository(db)
	vehicleRepo := vehicleRepository.NewVehicleRepository(db)
	addressRepo := addressRepository.NewAddressRepository(db)
	rideRepo := rideRepository.NewRideRepository(db)
	reservationRepo := reservationRepository.NewReservationRepository(db)
	reviewRepo := reviewRepository.NewReviewRepository(db)
	messageRepo := messageRepository.NewMessageRepository(db)

	// Gateways
	mapsGW := locationGateway.NewMapsGW(configs.Maps, redisClient)
	userGW := userGateway.NewUserGW(natsClient)
	rideGW := rideGateway.NewRideGW(natsClient)
	reservationGW := reservationGateway.NewReservationGW(natsClient)
	reviewGW := reviewGateway.NewReviewGW(natsClient)
	messageGW := messageGateway.NewMessageGW(natsClient)

	// Use cases
	userUC := userUsecase.NewUserUC(configs, userRepo, userGW)
	vehicleUC := vehicleUsecase.NewVehicleUC(configs, vehicleRepo)
	addressUC := addressUsecase.NewAddressUC(configs, addressRepo, userRepo, mapsGW)
	rideUC := rideUsecase.NewRideUC(configs, rideRepo, rideGW, userRepo, vehicleRepo, addressUC, mapsGW)
	reservationUC := reservationUsecase.NewReservationUC(configs, reservationRepo, reservationGW, rideRepo, userRepo)
	reviewUC := reviewUsecase.NewReviewUC(configs, reviewRepo, reviewGW, rideRepo)
	messageUC := messageUsecase.NewMessageUC(configs, messageRepo, messageGW, rideRepo, reservationRepo)

	// Event consumers
	emailSender := email.NewSMTPSender(configs.SMTP)
	notifier := notifyHandler.NewNotifyHandler(configs, natsClient, emailSender,
		userRepo, rideRepo, reservationRepo, reservationUC, userUC)
	if err := notifier.InitConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// HTTP router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	userHTTP.NewUserHandler(userUC).RegisterRoutes(e, configs.JWT)
	vehicleHTTP.NewVehicleHandler(vehicleUC).RegisterRoutes(e, configs.JWT)
	addressHTTP.NewAddressHandler(addressUC).RegisterRoutes(e, configs.JWT)
	rideHTTP.NewRideHandler(rideUC).RegisterRoutes(e, configs.JWT)
	reservationHTTP.NewReservationHandler(reservationUC).RegisterRoutes(e, configs.JWT)
	reviewHTTP.NewReviewHandler(reviewUC).RegisterRoutes(e, configs.JWT)
	messageHTTP.NewMessageHandler(messageUC).RegisterRoutes(e, configs.JWT)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
