package repository

import (
	"context"
	"fmt"
	"time"

	"railbook/internal/data/entity"
	"railbook/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RecentBooking is a dashboard row joining ticket, user and train names.
type RecentBooking struct {
	ID          string              `json:"id"`
	BookingDate time.Time           `json:"bookingDate"`
	JourneyDate time.Time           `json:"journeyDate"`
	Status      entity.TicketStatus `json:"status"`
	TotalAmount float64             `json:"totalAmount"`
	UserName    string              `json:"userName"`
	TrainName   string              `json:"trainName"`
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	Exists(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*entity.Ticket, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entity.TicketStatus) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.TicketStatus) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*RecentBooking, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log,
	}
}

func (tr *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, user_id, train_id, journey_date, booking_date,
		                     class, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := tr.db.Exec(ctx, query,
		ticket.ID,
		ticket.UserID,
		ticket.TrainID,
		ticket.JourneyDate,
		ticket.BookingDate,
		ticket.Class,
		ticket.Status,
		ticket.TotalAmount,
	)

	if err != nil {
		tr.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID),
			zap.String("user_id", ticket.UserID.String()),
		)
		return fmt.Errorf("create ticket %s: %w", ticket.ID, err)
	}

	return nil
}

func (tr *ticketRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tickets WHERE id = $1)`

	var exists bool
	if err := tr.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		tr.log.Error("Failed to check ticket existence",
			zap.Error(err),
			zap.String("ticket_id", id),
		)
		return false, fmt.Errorf("check ticket %s: %w", id, err)
	}

	return exists, nil
}

func (tr *ticketRepository) FindByID(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `
		SELECT id, user_id, train_id, journey_date, booking_date, class, status, total_amount
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := tr.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.TrainID,
		&ticket.JourneyDate,
		&ticket.BookingDate,
		&ticket.Class,
		&ticket.Status,
		&ticket.TotalAmount,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id, err)
	}

	return &ticket, nil
}

// FindByUserID returns the user's tickets, newest booking first.
func (tr *ticketRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, user_id, train_id, journey_date, booking_date, class, status, total_amount
		FROM tickets
		WHERE user_id = $1
		ORDER BY booking_date DESC
	`

	rows, err := tr.db.Query(ctx, query, userID)
	if err != nil {
		tr.log.Error("Failed to get user tickets",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find tickets for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.TrainID,
			&ticket.JourneyDate,
			&ticket.BookingDate,
			&ticket.Class,
			&ticket.Status,
			&ticket.TotalAmount,
		)
		if err != nil {
			tr.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (tr *ticketRepository) UpdateStatus(ctx context.Context, id string, status entity.TicketStatus) error {
	query := `UPDATE tickets SET status = $2 WHERE id = $1`

	result, err := tr.db.Exec(ctx, query, id, status)
	if err != nil {
		tr.log.Error("Failed to update ticket status",
			zap.Error(err),
			zap.String("ticket_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update ticket %s status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id)
	}

	return nil
}

// Delete removes a ticket; passenger rows go with it via cascade.
func (tr *ticketRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tickets WHERE id = $1`

	if _, err := tr.db.Exec(ctx, query, id); err != nil {
		tr.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id),
		)
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}

	return nil
}

func (tr *ticketRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets`

	var count int64
	if err := tr.db.QueryRow(ctx, query).Scan(&count); err != nil {
		tr.log.Error("Failed to count tickets", zap.Error(err))
		return 0, fmt.Errorf("count all tickets: %w", err)
	}

	return count, nil
}

func (tr *ticketRepository) CountByStatus(ctx context.Context, status entity.TicketStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE status = $1`

	var count int64
	if err := tr.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		tr.log.Error("Failed to count tickets by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count tickets by status %s: %w", status, err)
	}

	return count, nil
}

func (tr *ticketRepository) FindRecent(ctx context.Context, limit int) ([]*RecentBooking, error) {
	query := `
		SELECT t.id, t.booking_date, t.journey_date, t.status, t.total_amount,
		       u.name AS user_name, tr.name AS train_name
		FROM tickets t
		JOIN users u ON t.user_id = u.id
		JOIN trains tr ON t.train_id = tr.id
		ORDER BY t.booking_date DESC
		LIMIT $1
	`

	rows, err := tr.db.Query(ctx, query, limit)
	if err != nil {
		tr.log.Error("Failed to get recent bookings", zap.Error(err))
		return nil, fmt.Errorf("find recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*RecentBooking
	for rows.Next() {
		var booking RecentBooking
		err := rows.Scan(
			&booking.ID,
			&booking.BookingDate,
			&booking.JourneyDate,
			&booking.Status,
			&booking.TotalAmount,
			&booking.UserName,
			&booking.TrainName,
		)
		if err != nil {
			tr.log.Error("Failed to scan recent booking row", zap.Error(err))
			return nil, fmt.Errorf("scan recent booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		tr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate recent booking rows: %w", err)
	}

	return bookings, nil
}
