package cityservice

import (
	"context"

	"github.com/Galina9911/test-api/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cityservice.go -destination=mock_cityservice.go -package=cityservice

type Repo interface {
	Create(ctx context.Context, city *domain.City) (*domain.City, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateCity(ctx context.Context, name, country string) (*domain.City, error) {
	city, err := s.repo.Create(ctx, &domain.City{Name: name, Country: country})
	if err != nil {
		zap.L().Error("failed to create city", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	zap.L().Info("city created", zap.Int("id", city.ID), zap.String("name", name))
	return city, nil
}
