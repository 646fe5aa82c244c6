package dto

import "github.com/Galina9911/test-api/internal/domain"

type OrderDTO struct {
	ID            int     `json:"id" example:"1"`
	Item          *string `json:"item" example:"Laptop"`
	Amount        *int    `json:"amount" example:"1500"`
	Date          *string `json:"date" example:"2024-05-01"`
	PaymentMethod *string `json:"payment_method" example:"card"`
	Status        *string `json:"status" example:"paid"`
}

type GetOrdersResponseDTO struct {
	Orders []OrderDTO `json:"orders"`
}

type CreateOrderRequestDTO struct {
	Item          *string `json:"item" example:"Laptop"`
	Amount        *int    `json:"amount" example:"1500"`
	Date          *string `json:"date" example:"2024-05-01"`
	PaymentMethod *string `json:"payment_method" example:"card"`
	Status        *string `json:"status" example:"paid"`
}

type CreateOrderResponseDTO struct {
	Message string `json:"message" example:"Order created successfully"`
	OrderID int    `json:"order_id" example:"1"`
}

func NewGetOrdersResponseDTO(orders []domain.Order) GetOrdersResponseDTO {
	resp := GetOrdersResponseDTO{Orders: make([]OrderDTO, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, OrderDTO{
			ID:            o.ID,
			Item:          o.Item,
			Amount:        o.Amount,
			Date:          o.Date,
			PaymentMethod: o.PaymentMethod,
			Status:        o.Status,
		})
	}
	return resp
}

func (r CreateOrderRequestDTO) ToDomain(userID int) *domain.Order {
	return &domain.Order{
		UserID:        userID,
		Item:          r.Item,
		Amount:        r.Amount,
		Date:          r.Date,
		PaymentMethod: r.PaymentMethod,
		Status:        r.Status,
	}
}
