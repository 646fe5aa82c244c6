package orderservice

import (
	"context"

	"github.com/Galina9911/test-api/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mock_orderservice.go -package=orderservice

type Repo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	Create(ctx context.Context, order *domain.Order) (int, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// CreateOrder does not check that the user exists.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (int, error) {
	id, err := s.repo.Create(ctx, order)
	if err != nil {
		zap.L().Error("failed to create order", zap.Int("user_id", order.UserID), zap.Error(err))
		return 0, err
	}
	zap.L().Info("order created", zap.Int("id", id), zap.Int("user_id", order.UserID))
	return id, nil
}
