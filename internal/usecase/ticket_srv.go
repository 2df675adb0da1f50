package usecase

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"railbook/internal/data/entity"
	"railbook/internal/data/repository"
	"railbook/internal/dto/request"
	"railbook/internal/dto/response"
	"railbook/internal/fare"
	"railbook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ticketCodeAttempts bounds the retry loop for the short ticket code.
const ticketCodeAttempts = 5

type TicketService interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, req *request.CreateTicketRequest) (*response.CreateTicketResponse, error)
	GetUserTickets(ctx context.Context, userID uuid.UUID) ([]response.TicketResponse, error)
	GetTicketByID(ctx context.Context, userID uuid.UUID, role string, ticketID string) (*response.TicketResponse, error)
	CancelTicket(ctx context.Context, userID uuid.UUID, ticketID string) error
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, userID uuid.UUID, req *request.CreateTicketRequest) (*response.CreateTicketResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	journeyDate, err := time.Parse("2006-01-02", req.JourneyDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid journey date", ErrValidation)
	}

	// 2. Train must exist and offer the requested class
	train, err := s.repo.Train.FindByID(ctx, req.TrainID)
	if err != nil {
		s.log.Error("Failed to find train", zap.Error(err), zap.Int64("train_id", req.TrainID))
		return nil, fmt.Errorf("find train: %w", err)
	}
	if train == nil {
		return nil, fmt.Errorf("train %d: %w", req.TrainID, ErrNotFound)
	}
	if !slices.Contains(train.Classes, req.ClassName) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidClass, req.ClassName)
	}

	// 3. Optional seat selection, checked against the class seat map
	if len(req.Seats) > 0 {
		if err := fare.ValidateSelection(req.ClassName, req.Seats, len(req.Passengers)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSeats, err)
		}
	}

	// 4. Recompute the fare. The client's totalAmount is advisory only
	// and a mismatch rejects the booking.
	total, err := fare.ComputeTotal(train.Price, req.ClassName, len(req.Passengers), fare.Options{
		Insurance:   req.Insurance,
		SpecialMeal: req.SpecialMeal,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.TotalAmount != 0 && math.Abs(req.TotalAmount-total) > 0.01 {
		s.log.Warn("Fare mismatch",
			zap.Float64("claimed", req.TotalAmount),
			zap.Float64("computed", total),
			zap.Int64("train_id", req.TrainID),
			zap.String("class", req.ClassName),
		)
		return nil, fmt.Errorf("%w: expected %.2f", ErrFareMismatch, total)
	}

	// 5. Pick a ticket code, retrying on collision
	ticketID, err := s.uniqueTicketCode(ctx)
	if err != nil {
		return nil, err
	}

	// 6. Save ticket
	ticket := &entity.Ticket{
		ID:          ticketID,
		UserID:      userID,
		TrainID:     req.TrainID,
		JourneyDate: journeyDate,
		BookingDate: time.Now(),
		Class:       req.ClassName,
		Status:      entity.TicketStatusConfirmed,
		TotalAmount: total,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		s.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("train_id", req.TrainID),
		)
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	// 7. Save passengers
	passengers := make([]*entity.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = &entity.Passenger{
			TicketID: ticketID,
			Name:     p.Name,
			Age:      p.Age,
			Gender:   entity.Gender(p.Gender),
		}
	}

	if err := s.repo.Passenger.CreateBatch(ctx, passengers); err != nil {
		// Roll back the orphaned ticket
		s.repo.Ticket.Delete(ctx, ticketID)
		return nil, fmt.Errorf("create passengers: %w", err)
	}

	s.log.Info("Ticket booked",
		zap.String("ticket_id", ticketID),
		zap.String("user_id", userID.String()),
		zap.Int64("train_id", req.TrainID),
		zap.String("class", req.ClassName),
		zap.Int("passengers", len(passengers)),
		zap.Float64("total_amount", total),
	)

	return &response.CreateTicketResponse{TicketID: ticketID}, nil
}

func (s *ticketService) GetUserTickets(ctx context.Context, userID uuid.UUID) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Ticket.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user tickets", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user tickets: %w", err)
	}

	result := make([]response.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		resp, err := s.buildTicketResponse(ctx, ticket)
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}

	return result, nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, userID uuid.UUID, role string, ticketID string) (*response.TicketResponse, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		s.log.Error("Failed to get ticket", zap.Error(err), zap.String("ticket_id", ticketID))
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	// Non-owners get the same 404 as a missing ticket, except admins who
	// may read any ticket.
	if ticket == nil || (ticket.UserID != userID && role != string(entity.RoleAdmin)) {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	return s.buildTicketResponse(ctx, ticket)
}

func (s *ticketService) CancelTicket(ctx context.Context, userID uuid.UUID, ticketID string) error {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		s.log.Error("Failed to find ticket for cancel", zap.Error(err), zap.String("ticket_id", ticketID))
		return fmt.Errorf("find ticket: %w", err)
	}
	if ticket == nil || ticket.UserID != userID {
		return fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	if err := s.repo.Ticket.UpdateStatus(ctx, ticketID, entity.TicketStatusCancelled); err != nil {
		s.log.Error("Failed to cancel ticket", zap.Error(err), zap.String("ticket_id", ticketID))
		return fmt.Errorf("cancel ticket: %w", err)
	}

	s.log.Info("Ticket cancelled",
		zap.String("ticket_id", ticketID),
		zap.String("user_id", userID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *ticketService) uniqueTicketCode(ctx context.Context) (string, error) {
	for i := 0; i < ticketCodeAttempts; i++ {
		code := utils.GenerateTicketCode()

		exists, err := s.repo.Ticket.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check ticket code: %w", err)
		}
		if !exists {
			return code, nil
		}

		s.log.Warn("Ticket code collision, retrying", zap.String("code", code))
	}

	return "", fmt.Errorf("generate ticket code: exhausted %d attempts", ticketCodeAttempts)
}

func (s *ticketService) buildTicketResponse(ctx context.Context, ticket *entity.Ticket) (*response.TicketResponse, error) {
	train, err := s.repo.Train.FindByID(ctx, ticket.TrainID)
	if err != nil {
		s.log.Error("Failed to get train for ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID),
			zap.Int64("train_id", ticket.TrainID),
		)
		return nil, fmt.Errorf("get train for ticket %s: %w", ticket.ID, err)
	}

	passengers, err := s.repo.Passenger.FindByTicketID(ctx, ticket.ID)
	if err != nil {
		s.log.Error("Failed to get passengers for ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID),
		)
		return nil, fmt.Errorf("get passengers for ticket %s: %w", ticket.ID, err)
	}

	resp := response.TicketToResponse(ticket, train, passengers)
	return &resp, nil
}
