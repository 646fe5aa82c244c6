package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func ptr[T any](v T) *T {
	return &v
}

func newRequest(method, id, body string) *http.Request {
	req := httptest.NewRequest(method, "/users/"+id+"/orders", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedBody  string
		expectedError string
	}{
		{
			name: "Orders found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return([]domain.Order{
					{ID: 10, UserID: 1, Item: ptr("Laptop"), Amount: ptr(1500), Date: ptr("2024-05-01"), PaymentMethod: ptr("card"), Status: ptr("paid")},
					{ID: 11, UserID: 1},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"orders":[
				{"id":10,"item":"Laptop","amount":1500,"date":"2024-05-01","payment_method":"card","status":"paid"},
				{"id":11,"item":null,"amount":null,"date":null,"payment_method":null,"status":null}
			]}`,
		},
		{
			name: "No orders",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 2).Return([]domain.Order{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"orders":[]}`,
		},
		{
			name:          "Invalid id",
			id:            "one",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid user id",
		},
		{
			name: "Store error",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.GetOrders(rr, newRequest(http.MethodGet, tt.id, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedID    int
		expectedError string
	}{
		{
			name: "Order created",
			id:   "1",
			body: `{"item":"Phone","amount":700,"date":"2024-06-01","payment_method":"cash","status":"new"}`,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), &domain.Order{
					UserID:        1,
					Item:          ptr("Phone"),
					Amount:        ptr(700),
					Date:          ptr("2024-06-01"),
					PaymentMethod: ptr("cash"),
					Status:        ptr("new"),
				}).Return(42, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   42,
		},
		{
			name: "Empty order for a missing user",
			id:   "999",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), &domain.Order{UserID: 999}).Return(43, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   43,
		},
		{
			name: "Empty body",
			id:   "5",
			body: "",
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), &domain.Order{UserID: 5}).Return(44, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   44,
		},
		{
			name:          "Invalid id",
			id:            "x",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid user id",
		},
		{
			name:          "Invalid request body",
			id:            "1",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Store error",
			id:   "1",
			body: `{"item":"Phone"}`,
			prepareMock: func() {
				service.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.CreateOrder(rr, newRequest(http.MethodPost, tt.id, tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.CreateOrderResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Order created successfully", resp.Message)
			assert.Equal(t, tt.expectedID, resp.OrderID)
		})
	}
}
