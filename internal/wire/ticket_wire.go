package wire

import (
	"railbook/internal/adaptor"
	"railbook/pkg/middleware"
	"railbook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All ticket routes require a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth([]byte(config.JWT.Secret), log))

		r.Post("/api/tickets", ticketHandler.CreateTicket)
		r.Get("/api/tickets", ticketHandler.GetTickets)
		r.Get("/api/tickets/{id}", ticketHandler.GetTicketByID)
		r.Put("/api/tickets/{id}/cancel", ticketHandler.CancelTicket)
	})
}
