package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestIntURLParam(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    int
		expectedErr bool
	}{
		{name: "Integer", value: "42", expected: 42},
		{name: "Negative", value: "-1", expected: -1},
		{name: "Not a number", value: "abc", expectedErr: true},
		{name: "Empty", value: "", expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.value)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			n, err := IntURLParam(req, "id")
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}
