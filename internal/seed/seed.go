// Package seed tops the users table up with fake records on start.
package seed

import (
	"context"
	"fmt"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
)

//go:generate mockgen -source=seed.go -destination=mock_seed.go -package=seed

const (
	MinUsers = 20

	minCityID  = 1
	maxCityID  = 5
	minBalance = 1000
	maxBalance = 50000

	dateLayout = "2006-01-02"
)

type Repo interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Seeder struct {
	repo  Repo
	faker *gofakeit.Faker
}

func New(repo Repo) *Seeder {
	return &Seeder{
		repo:  repo,
		faker: gofakeit.New(0),
	}
}

// Run inserts MinUsers-count users. Existing rows are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("can't count users: %w", err)
	}
	if count >= MinUsers {
		zap.L().Debug("seed skipped", zap.Int("users", count))
		return nil
	}

	missing := MinUsers - count
	for i := 0; i < missing; i++ {
		if _, err := s.repo.Create(ctx, s.fakeUser()); err != nil {
			return fmt.Errorf("can't create fake user: %w", err)
		}
	}
	zap.L().Info("fake users generated", zap.Int("count", missing))
	return nil
}

func (s *Seeder) fakeUser() *domain.User {
	cityID := s.faker.IntRange(minCityID, maxCityID)
	phone := s.faker.Phone()
	email := s.faker.Email()
	registered := s.faker.PastDate().Format(dateLayout)
	balance := s.faker.IntRange(minBalance, maxBalance)

	return &domain.User{
		Name:             s.faker.Name(),
		CityID:           &cityID,
		Phone:            &phone,
		Email:            &email,
		RegistrationDate: &registered,
		Balance:          &balance,
	}
}
