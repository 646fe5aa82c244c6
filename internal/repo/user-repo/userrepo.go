package userrepo

import (
	"context"
	"errors"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/Galina9911/test-api/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const userColumns = "id, name, city_id, phone, email, registration_date, balance"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.CityID, &user.Phone, &user.Email, &user.RegistrationDate, &user.Balance)
	return user, err
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (repo *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, city_id, phone, email, registration_date, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Name, user.CityID, user.Phone, user.Email, user.RegistrationDate, user.Balance).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Replace(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, city_id = $2, phone = $3, email = $4, registration_date = $5, balance = $6
		WHERE id = $7
	`
	_, err := repo.db.Exec(ctx, query, user.Name, user.CityID, user.Phone, user.Email, user.RegistrationDate, user.Balance, user.ID)
	if err != nil {
		zap.L().Error("can't replace user", zap.Int("id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

// Patch reads the row under lock, merges the patch in Go and writes both
// patchable columns back. A missing user is not an error.
func (repo *Repository) Patch(ctx context.Context, id int, patch domain.UserPatch) error {
	return repo.txManager.Begin(ctx, func(ctx context.Context) error {
		row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id)
		user, err := scanUser(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't load user for patch", zap.Int("id", id), zap.Error(err))
			return err
		}

		user.Apply(patch)

		_, err = repo.db.Exec(ctx, "UPDATE users SET city_id = $1, phone = $2 WHERE id = $3", user.CityID, user.Phone, id)
		if err != nil {
			zap.L().Error("can't patch user", zap.Int("id", id), zap.Error(err))
			return err
		}
		return nil
	})
}

func (repo *Repository) UpdateCity(ctx context.Context, id, cityID int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET city_id = $1 WHERE id = $2", cityID, id)
	if err != nil {
		zap.L().Error("can't update user city", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, id int) error {
	_, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
