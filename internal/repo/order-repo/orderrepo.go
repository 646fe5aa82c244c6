package orderrepo

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

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, item, amount, date, payment_method, status
        FROM orders
        WHERE user_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.UserID, &order.Item, &order.Amount, &order.Date, &order.PaymentMethod, &order.Status)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate order rows", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (int, error) {
	query := `
        INSERT INTO orders (user_id, item, amount, date, payment_method, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, order.UserID, order.Item, order.Amount, order.Date, order.PaymentMethod, order.Status).Scan(&id)
	if err != nil {
		zap.L().Error("can't save order", zap.Int("user_id", order.UserID), zap.Error(err))
		return 0, err
	}
	return id, nil
}
