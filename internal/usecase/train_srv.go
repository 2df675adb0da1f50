package usecase

import (
	"context"
	"fmt"

	"railbook/internal/data/repository"
	"railbook/internal/dto/response"

	"go.uber.org/zap"
)

type TrainService interface {
	GetTrains(ctx context.Context) ([]response.TrainResponse, error)
	GetTrainByID(ctx context.Context, id int64) (*response.TrainResponse, error)
}

type trainService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTrainService(repo *repository.Repository, log *zap.Logger) TrainService {
	return &trainService{
		repo: repo,
		log:  log.With(zap.String("service", "train")),
	}
}

func (s *trainService) GetTrains(ctx context.Context) ([]response.TrainResponse, error) {
	trains, err := s.repo.Train.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get trains", zap.Error(err))
		return nil, fmt.Errorf("get trains: %w", err)
	}

	result := make([]response.TrainResponse, 0, len(trains))
	for _, train := range trains {
		result = append(result, response.TrainToResponse(train))
	}

	return result, nil
}

func (s *trainService) GetTrainByID(ctx context.Context, id int64) (*response.TrainResponse, error) {
	train, err := s.repo.Train.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get train", zap.Error(err), zap.Int64("train_id", id))
		return nil, fmt.Errorf("get train: %w", err)
	}
	if train == nil {
		return nil, fmt.Errorf("train %d: %w", id, ErrNotFound)
	}

	resp := response.TrainToResponse(train)
	return &resp, nil
}
