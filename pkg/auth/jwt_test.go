package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name     string
		role     string
		issuedAt time.Time
	}{
		{
			name:     "Admin token",
			role:     RoleAdmin,
			issuedAt: time.Now(),
		},
		{
			name:     "User token",
			role:     RoleUser,
			issuedAt: time.Now(),
		},
		{
			name:     "Token issued in the past",
			role:     RoleUser,
			issuedAt: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.role, tt.issuedAt)

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestIssueThenValidate(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	for _, role := range []string{RoleAdmin, RoleUser} {
		t.Run(role, func(t *testing.T) {
			issuedAt := time.Now()
			token, err := jwtService.GenerateJWT(role, issuedAt)
			require.NoError(t, err)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, role, claims.Role)
			assert.Equal(t, "test_user", claims.User)
			assert.Equal(t, issuedAt.Add(TokenTTL).Unix(), claims.ExpiresAt)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(RoleUser, time.Now())
				return token
			},
		},
		{
			name: "Still valid before the window closes",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(RoleAdmin, time.Now().Add(-29*time.Minute))
				return token
			},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired after thirty minutes",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(RoleAdmin, time.Now().Add(-31*time.Minute))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(RoleAdmin, time.Now())
				return token
			},
			expectError: true,
		},
		{
			name: "Unknown role",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("root", time.Now())
				return token
			},
			expectError: true,
		},
		{
			name: "Unexpected signing method",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
					Role: RoleAdmin,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
					},
				})
				signedToken, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("user"))
	assert.False(t, IsValidRole("guest"))
	assert.False(t, IsValidRole(""))
}
