package authservice

import (
	"errors"
	"testing"
	"time"

	"github.com/Galina9911/test-api/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *auth.MockJWTServiceInterface, time.Time) {
	ctrl := gomock.NewController(t)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service := New(jwtService)
	service.now = func() time.Time { return fixed }
	return service, jwtService, fixed
}

func TestIssueToken(t *testing.T) {
	service, jwtService, now := NewMock(t)

	tests := []struct {
		name          string
		role          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Admin token",
			role: "admin",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("admin", now).Return("admin-token", nil)
			},
			expectedToken: "admin-token",
		},
		{
			name: "User token",
			role: "user",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user", now).Return("user-token", nil)
			},
			expectedToken: "user-token",
		},
		{
			name:          "Unknown role",
			role:          "guest",
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name:          "Empty role",
			role:          "",
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name: "Signing error",
			role: "user",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user", now).Return("", errors.New("can't sign"))
			},
			expectedError: errors.New("can't sign"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.IssueToken(tt.role)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestIssueTokenRoundTrip(t *testing.T) {
	jwtService := auth.NewJWTService("round-trip-secret")
	service := New(jwtService)

	for _, role := range []string{auth.RoleAdmin, auth.RoleUser} {
		token, err := service.IssueToken(role)
		require.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}
