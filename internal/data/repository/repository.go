package repository

import (
	"railbook/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Train     TrainRepository
	Ticket    TicketRepository
	Passenger PassengerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Train:     NewTrainRepository(db, log),
		Ticket:    NewTicketRepository(db, log),
		Passenger: NewPassengerRepository(db, log),
	}
}
