package response

import (
	"time"

	"railbook/internal/data/entity"
)

type TicketTrainResponse struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Duration  string `json:"duration"`
}

type PassengerResponse struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type TicketResponse struct {
	ID          string              `json:"id"`
	Train       TicketTrainResponse `json:"train"`
	JourneyDate time.Time           `json:"journeyDate"`
	BookingDate time.Time           `json:"bookingDate"`
	Class       string              `json:"class"`
	Status      entity.TicketStatus `json:"status"`
	TotalAmount float64             `json:"totalAmount"`
	Passengers  []PassengerResponse `json:"passengers"`
}

type CreateTicketResponse struct {
	TicketID string `json:"ticketId"`
}

func TicketToResponse(ticket *entity.Ticket, train *entity.Train, passengers []*entity.Passenger) TicketResponse {
	resp := TicketResponse{
		ID:          ticket.ID,
		JourneyDate: ticket.JourneyDate,
		BookingDate: ticket.BookingDate,
		Class:       ticket.Class,
		Status:      ticket.Status,
		TotalAmount: ticket.TotalAmount,
		Passengers:  []PassengerResponse{},
	}

	if train != nil {
		resp.Train = TicketTrainResponse{
			Name:      train.Name,
			Number:    train.Number,
			From:      train.FromStation,
			To:        train.ToStation,
			Departure: train.Departure,
			Arrival:   train.Arrival,
			Duration:  train.Duration,
		}
	}

	for _, passenger := range passengers {
		resp.Passengers = append(resp.Passengers, PassengerResponse{
			Name:   passenger.Name,
			Age:    passenger.Age,
			Gender: string(passenger.Gender),
		})
	}

	return resp
}
