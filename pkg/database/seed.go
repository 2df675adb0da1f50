package database

import (
	"context"
	"fmt"

	"railbook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seedTrain struct {
	name         string
	number       string
	fromStation  string
	toStation    string
	departure    string
	arrival      string
	duration     string
	trainType    string
	price        float64
	availability string
	rating       float64
	classes      []string
	amenities    []string
}

var seedTrains = []seedTrain{
	{
		name: "Rajdhani Express", number: "12301",
		fromStation: "New Delhi", toStation: "Mumbai Central",
		departure: "16:50", arrival: "08:35", duration: "15h 45m",
		trainType: "Superfast", price: 1450, availability: "Available", rating: 4.7,
		classes:   []string{"SL", "3A", "2A", "1A"},
		amenities: []string{"food", "wifi", "entertainment", "charging", "bedding"},
	},
	{
		name: "Shatabdi Express", number: "12002",
		fromStation: "New Delhi", toStation: "Bhopal",
		departure: "06:15", arrival: "14:10", duration: "7h 55m",
		trainType: "Premium", price: 850, availability: "Limited", rating: 4.5,
		classes:   []string{"CC", "EC"},
		amenities: []string{"food", "wifi", "entertainment", "charging"},
	},
	{
		name: "Duronto Express", number: "12213",
		fromStation: "Mumbai CST", toStation: "Delhi Sarai Rohilla",
		departure: "23:10", arrival: "16:25", duration: "17h 15m",
		trainType: "Superfast", price: 1250, availability: "Available", rating: 4.3,
		classes:   []string{"SL", "3A", "2A"},
		amenities: []string{"food", "bedding", "charging"},
	},
	{
		name: "Vande Bharat Express", number: "22435",
		fromStation: "New Delhi", toStation: "Varanasi",
		departure: "06:00", arrival: "14:00", duration: "8h 00m",
		trainType: "Premium", price: 1950, availability: "Available", rating: 4.9,
		classes:   []string{"CC", "EC"},
		amenities: []string{"food", "wifi", "entertainment", "charging"},
	},
	{
		name: "Tejas Express", number: "22119",
		fromStation: "Mumbai CST", toStation: "Karmali",
		departure: "05:50", arrival: "14:15", duration: "8h 25m",
		trainType: "Premium", price: 1200, availability: "Limited", rating: 4.5,
		classes:   []string{"CC", "EC"},
		amenities: []string{"food", "wifi", "entertainment", "charging"},
	},
}

// Seed inserts the default accounts and train reference data. It is
// idempotent: tables that already hold rows are left alone.
func Seed(ctx context.Context, db PgxIface, logger *zap.Logger) error {
	if err := seedUsers(ctx, db, logger); err != nil {
		return err
	}
	return seedTrainData(ctx, db, logger)
}

func seedUsers(ctx context.Context, db PgxIface, logger *zap.Logger) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	userPassword, err := utils.HashPassword("user123")
	if err != nil {
		return fmt.Errorf("hash user password: %w", err)
	}

	insert := `INSERT INTO users (id, name, email, password, role) VALUES ($1, $2, $3, $4, $5)`

	if _, err := db.Exec(ctx, insert, uuid.New(), "Admin User", "admin@indiarail.com", adminPassword, "admin"); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if _, err := db.Exec(ctx, insert, uuid.New(), "Test User", "user@example.com", userPassword, "user"); err != nil {
		return fmt.Errorf("seed test user: %w", err)
	}

	logger.Info("Default users seeded")
	return nil
}

func seedTrainData(ctx context.Context, db PgxIface, logger *zap.Logger) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM trains`).Scan(&count); err != nil {
		return fmt.Errorf("count trains: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, train := range seedTrains {
		var trainID int64
		err := db.QueryRow(ctx, `
			INSERT INTO trains (name, number, from_station, to_station, departure, arrival,
			                    duration, type, price, availability, rating)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`,
			train.name, train.number, train.fromStation, train.toStation,
			train.departure, train.arrival, train.duration, train.trainType,
			train.price, train.availability, train.rating,
		).Scan(&trainID)
		if err != nil {
			return fmt.Errorf("seed train %s: %w", train.name, err)
		}

		for _, class := range train.classes {
			if _, err := db.Exec(ctx,
				`INSERT INTO train_classes (train_id, class) VALUES ($1, $2)`,
				trainID, class,
			); err != nil {
				return fmt.Errorf("seed classes for %s: %w", train.name, err)
			}
		}

		for _, amenity := range train.amenities {
			if _, err := db.Exec(ctx,
				`INSERT INTO train_amenities (train_id, amenity) VALUES ($1, $2)`,
				trainID, amenity,
			); err != nil {
				return fmt.Errorf("seed amenities for %s: %w", train.name, err)
			}
		}
	}

	logger.Info("Default trains seeded", zap.Int("count", len(seedTrains)))
	return nil
}
