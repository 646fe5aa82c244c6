package cityrepo

import (
	"context"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/Galina9911/test-api/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	err := r.db.QueryRow(ctx, "INSERT INTO cities (name, country) VALUES ($1, $2) RETURNING id", city.Name, city.Country).Scan(&city.ID)
	if err != nil {
		zap.L().Error("can't save city", zap.String("name", city.Name), zap.Error(err))
		return nil, err
	}
	return city, nil
}
