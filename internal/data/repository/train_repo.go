package repository

import (
	"context"
	"fmt"

	"railbook/internal/data/entity"
	"railbook/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TrainRepository interface {
	FindAll(ctx context.Context) ([]*entity.Train, error)
	FindByID(ctx context.Context, id int64) (*entity.Train, error)
	CountAll(ctx context.Context) (int64, error)
}

type trainRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrainRepository(db database.PgxIface, log *zap.Logger) TrainRepository {
	return &trainRepository{
		db:  db,
		log: log,
	}
}

func (tr *trainRepository) FindAll(ctx context.Context) ([]*entity.Train, error) {
	query := `
		SELECT id, name, number, from_station, to_station, departure, arrival,
		       duration, type, price, availability, rating
		FROM trains
		ORDER BY id
	`

	rows, err := tr.db.Query(ctx, query)
	if err != nil {
		tr.log.Error("Failed to get all trains", zap.Error(err))
		return nil, fmt.Errorf("find all trains: %w", err)
	}
	defer rows.Close()

	var trains []*entity.Train
	for rows.Next() {
		var train entity.Train
		err := rows.Scan(
			&train.ID,
			&train.Name,
			&train.Number,
			&train.FromStation,
			&train.ToStation,
			&train.Departure,
			&train.Arrival,
			&train.Duration,
			&train.Type,
			&train.Price,
			&train.Availability,
			&train.Rating,
		)
		if err != nil {
			tr.log.Error("Failed to scan train row", zap.Error(err))
			return nil, fmt.Errorf("scan train row: %w", err)
		}
		trains = append(trains, &train)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate train rows: %w", err)
	}

	// Attach classes and amenities per train
	for _, train := range trains {
		if err := tr.attachDetails(ctx, train); err != nil {
			return nil, err
		}
	}

	return trains, nil
}

func (tr *trainRepository) FindByID(ctx context.Context, id int64) (*entity.Train, error) {
	query := `
		SELECT id, name, number, from_station, to_station, departure, arrival,
		       duration, type, price, availability, rating
		FROM trains
		WHERE id = $1
	`

	var train entity.Train
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&train.ID,
		&train.Name,
		&train.Number,
		&train.FromStation,
		&train.ToStation,
		&train.Departure,
		&train.Arrival,
		&train.Duration,
		&train.Type,
		&train.Price,
		&train.Availability,
		&train.Rating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find train by ID",
			zap.Error(err),
			zap.Int64("train_id", id),
		)
		return nil, fmt.Errorf("find train by ID %d: %w", id, err)
	}

	if err := tr.attachDetails(ctx, &train); err != nil {
		return nil, err
	}

	return &train, nil
}

func (tr *trainRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM trains`

	var count int64
	err := tr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		tr.log.Error("Failed to count trains", zap.Error(err))
		return 0, fmt.Errorf("count all trains: %w", err)
	}

	return count, nil
}

// attachDetails loads the classes and amenities sets for one train.
func (tr *trainRepository) attachDetails(ctx context.Context, train *entity.Train) error {
	classes, err := tr.queryStrings(ctx,
		`SELECT class FROM train_classes WHERE train_id = $1 ORDER BY id`, train.ID)
	if err != nil {
		tr.log.Error("Failed to get train classes",
			zap.Error(err),
			zap.Int64("train_id", train.ID),
		)
		return fmt.Errorf("find classes for train %d: %w", train.ID, err)
	}
	train.Classes = classes

	amenities, err := tr.queryStrings(ctx,
		`SELECT amenity FROM train_amenities WHERE train_id = $1 ORDER BY id`, train.ID)
	if err != nil {
		tr.log.Error("Failed to get train amenities",
			zap.Error(err),
			zap.Int64("train_id", train.ID),
		)
		return fmt.Errorf("find amenities for train %d: %w", train.ID, err)
	}
	train.Amenities = amenities

	return nil
}

func (tr *trainRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := tr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}
