// Command seed migrates the schema and replaces the fleet with sample cars.
package main

import (
	"context"
	"log/slog"
	"os"

	"rental/config"
	"rental/internal/domain/entity"
	"rental/internal/infra/persistence/model"
	"rental/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func sampleCars() []*entity.Car {
	return []*entity.Car{
		{Make: "Toyota", Model: "Camry", Year: 2021, PricePerDay: 45, Seats: 5},
		{Make: "Honda", Model: "Civic", Year: 2020, PricePerDay: 40, Seats: 5},
		{Make: "Tesla", Model: "Model 3", Year: 2022, PricePerDay: 120, Seats: 5},
		{Make: "Ford", Model: "Escape", Year: 2019, PricePerDay: 55, Seats: 5},
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.CarModel{},
		&model.BookingModel{},
	); err != nil {
		logger.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	cars := sampleCars()
	if err := postgres.NewCarRepository(db).ReplaceAll(ctx, cars); err != nil {
		logger.Error("Failed to seed fleet", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Fleet seeded", slog.Int("cars", len(cars)))
}
