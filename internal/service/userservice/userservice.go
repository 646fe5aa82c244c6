package userservice

import (
	"context"

	"github.com/Galina9911/test-api/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Replace(ctx context.Context, user *domain.User) error
	Patch(ctx context.Context, id int, patch domain.UserPatch) error
	UpdateCity(ctx context.Context, id, cityID int) error
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created", zap.Int("id", created.ID))
	return created, nil
}

func (s *Service) Replace(ctx context.Context, user *domain.User) error {
	if err := s.repo.Replace(ctx, user); err != nil {
		zap.L().Error("failed to replace user", zap.Int("id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Patch(ctx context.Context, id int, patch domain.UserPatch) error {
	if err := s.repo.Patch(ctx, id, patch); err != nil {
		zap.L().Error("failed to patch user", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) UpdateCity(ctx context.Context, id, cityID int) error {
	if err := s.repo.UpdateCity(ctx, id, cityID); err != nil {
		zap.L().Error("failed to update user city", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		zap.L().Error("failed to delete user", zap.Int("id", id), zap.Error(err))
		return err
	}
	zap.L().Info("user deleted", zap.Int("id", id))
	return nil
}
