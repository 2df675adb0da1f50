package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusWaiting   TicketStatus = "waiting"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusCompleted TicketStatus = "completed"
)

// Ticket ID is a short code like T48213, checked unique at creation.
type Ticket struct {
	ID          string       `db:"id"`
	UserID      uuid.UUID    `db:"user_id"`
	TrainID     int64        `db:"train_id"`
	JourneyDate time.Time    `db:"journey_date"`
	BookingDate time.Time    `db:"booking_date"`
	Class       string       `db:"class"`
	Status      TicketStatus `db:"status"`
	TotalAmount float64      `db:"total_amount"`
}
