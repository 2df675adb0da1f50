package repository

import (
	"context"
	"fmt"

	"railbook/internal/data/entity"
	"railbook/pkg/database"

	"go.uber.org/zap"
)

type PassengerRepository interface {
	CreateBatch(ctx context.Context, passengers []*entity.Passenger) error
	FindByTicketID(ctx context.Context, ticketID string) ([]*entity.Passenger, error)
}

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log,
	}
}

func (pr *passengerRepository) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	query := `INSERT INTO passengers (ticket_id, name, age, gender) VALUES ($1, $2, $3, $4)`

	for _, passenger := range passengers {
		_, err := pr.db.Exec(ctx, query,
			passenger.TicketID,
			passenger.Name,
			passenger.Age,
			passenger.Gender,
		)
		if err != nil {
			pr.log.Error("Failed to create passenger",
				zap.Error(err),
				zap.String("ticket_id", passenger.TicketID),
				zap.String("name", passenger.Name),
			)
			return fmt.Errorf("create passenger for ticket %s: %w", passenger.TicketID, err)
		}
	}

	return nil
}

func (pr *passengerRepository) FindByTicketID(ctx context.Context, ticketID string) ([]*entity.Passenger, error) {
	query := `
		SELECT id, ticket_id, name, age, gender
		FROM passengers
		WHERE ticket_id = $1
		ORDER BY id
	`

	rows, err := pr.db.Query(ctx, query, ticketID)
	if err != nil {
		pr.log.Error("Failed to get passengers",
			zap.Error(err),
			zap.String("ticket_id", ticketID),
		)
		return nil, fmt.Errorf("find passengers for ticket %s: %w", ticketID, err)
	}
	defer rows.Close()

	var passengers []*entity.Passenger
	for rows.Next() {
		var passenger entity.Passenger
		err := rows.Scan(
			&passenger.ID,
			&passenger.TicketID,
			&passenger.Name,
			&passenger.Age,
			&passenger.Gender,
		)
		if err != nil {
			pr.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &passenger)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate passenger rows: %w", err)
	}

	return passengers, nil
}
