package usecase

import (
	"context"
	"fmt"

	"railbook/internal/data/entity"
	"railbook/internal/data/repository"
	"railbook/internal/dto/response"

	"go.uber.org/zap"
)

// recentBookingsLimit caps the dashboard booking list.
const recentBookingsLimit = 10

type AdminService interface {
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	userCount, err := s.repo.User.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	trainCount, err := s.repo.Train.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count trains: %w", err)
	}

	ticketCount, err := s.repo.Ticket.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	cancelledCount, err := s.repo.Ticket.CountByStatus(ctx, entity.TicketStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("count cancelled tickets: %w", err)
	}

	recentBookings, err := s.repo.Ticket.FindRecent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}
	if recentBookings == nil {
		recentBookings = []*repository.RecentBooking{}
	}

	s.log.Debug("Dashboard computed",
		zap.Int64("users", userCount),
		zap.Int64("tickets", ticketCount),
	)

	return &response.DashboardResponse{
		Stats: response.DashboardStats{
			UserCount:      userCount,
			TrainCount:     trainCount,
			TicketCount:    ticketCount,
			CancelledCount: cancelledCount,
		},
		RecentBookings: recentBookings,
	}, nil
}
