package usecase

import (
	"railbook/internal/data/repository"
	"railbook/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Train  TrainService
	Ticket TicketService
	Admin  AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Train:  NewTrainService(repo, log),
		Ticket: NewTicketService(repo, log),
		Admin:  NewAdminService(repo, log),
	}
}
