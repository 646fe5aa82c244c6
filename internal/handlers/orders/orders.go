package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/pkg/utils"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) (int, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GetOrders godoc
//
//	@Summary		Get orders of a user
//	@Description	List the orders placed by the user, oldest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.GetOrdersResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		401	{object}	utils.Response	"Access denied, token missing"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/{id}/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.IntURLParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGetOrdersResponseDTO(orders))
}

// CreateOrder godoc
//
//	@Summary		Create an order for a user
//	@Description	Every order field is optional. The user is not checked for existence.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order"
//	@Success		200		{object}	dto.CreateOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/{id}/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.IntURLParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.CreateOrderRequestDTO
	// An empty body creates an order with every field NULL.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	orderID, err := h.orderService.CreateOrder(r.Context(), req.ToDomain(userID))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateOrderResponseDTO{
		Message: "Order created successfully",
		OrderID: orderID,
	})
}
