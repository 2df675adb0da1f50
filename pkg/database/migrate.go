package database

import (
	"context"
	"fmt"
)

// Schema statements, executed in order. Foreign keys cascade so deleting a
// ticket removes its passengers and deleting a train removes its classes
// and amenities.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(10) NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS trains (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		number VARCHAR(50) NOT NULL,
		from_station VARCHAR(255) NOT NULL,
		to_station VARCHAR(255) NOT NULL,
		departure VARCHAR(5) NOT NULL,
		arrival VARCHAR(5) NOT NULL,
		duration VARCHAR(50) NOT NULL,
		type VARCHAR(20) NOT NULL CHECK (type IN ('Premium', 'Superfast', 'Express', 'Passenger')),
		price NUMERIC(10, 2) NOT NULL,
		availability VARCHAR(20) NOT NULL DEFAULT 'Available' CHECK (availability IN ('Available', 'Limited', 'Full')),
		rating NUMERIC(3, 1) NOT NULL DEFAULT 4.0
	)`,

	`CREATE TABLE IF NOT EXISTS train_classes (
		id BIGSERIAL PRIMARY KEY,
		train_id BIGINT NOT NULL REFERENCES trains(id) ON DELETE CASCADE,
		class VARCHAR(5) NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS train_amenities (
		id BIGSERIAL PRIMARY KEY,
		train_id BIGINT NOT NULL REFERENCES trains(id) ON DELETE CASCADE,
		amenity VARCHAR(20) NOT NULL CHECK (amenity IN ('food', 'wifi', 'entertainment', 'charging', 'bedding'))
	)`,

	`CREATE TABLE IF NOT EXISTS tickets (
		id VARCHAR(20) PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		train_id BIGINT NOT NULL REFERENCES trains(id) ON DELETE CASCADE,
		journey_date DATE NOT NULL,
		booking_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		class VARCHAR(5) NOT NULL,
		status VARCHAR(10) NOT NULL DEFAULT 'confirmed' CHECK (status IN ('confirmed', 'waiting', 'cancelled', 'completed')),
		total_amount NUMERIC(10, 2) NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS passengers (
		id BIGSERIAL PRIMARY KEY,
		ticket_id VARCHAR(20) NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		age INT NOT NULL,
		gender VARCHAR(10) NOT NULL CHECK (gender IN ('male', 'female', 'other'))
	)`,
}

// Migrate creates all tables if they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
