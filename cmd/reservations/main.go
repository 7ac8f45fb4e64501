package main

import (
	"seoulier/internal/reservations/events"
	"seoulier/internal/reservations/handler"
	"seoulier/internal/reservations/repository"
	"seoulier/internal/reservations/service"
	"seoulier/internal/reservations/validator"
	"seoulier/pkg/app"
	"seoulier/pkg/config"
	"seoulier/pkg/kafka"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reservations service")
	reservationService, closeProducer := initServices(cfg)
	defer closeProducer()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewReservationHandler(reservationService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.ReservationService, func()) {
	reservationValidator := validator.NewReservationValidator(cfg.Log, cfg.RequirePhone)

	var repo repository.ReservationRepository
	if cfg.UsesLocalStore() {
		localRepo, err := repository.NewLocalReservationRepository(cfg)
		if err != nil {
			cfg.Log.Fatal("Failed to open local store", "path", cfg.LocalStorePath, "error", err)
		}
		repo = localRepo
		cfg.Log.Info("Reservation store initialized", "backend", "local", "path", cfg.LocalStorePath)
	} else {
		cfg.SetMongo()
		repo = repository.NewMongoReservationRepository(cfg)
		cfg.Log.Info("Reservation store initialized", "backend", "mongo", "database", cfg.MongoDatabaseName)
	}

	var producer *kafka.Producer
	closeProducer := func() {}
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		closeProducer = func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}
		cfg.Log.Info("Event publishing enabled", "topic", cfg.KafkaTopic)
	}
	publisher := events.NewPublisher(producer, cfg.Log)

	reservationService := service.NewReservationService(
		repo,
		reservationValidator,
		publisher,
		cfg,
	)

	return reservationService, closeProducer
}
