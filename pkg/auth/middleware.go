package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Galina9911/test-api/pkg/utils"
)

type ContextKey string

const ClaimsKey ContextKey = "claims"

// AuthMiddleware rejects requests without a bearer token with 401 and
// requests with a bad or expired one with 403.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Access denied, token missing")
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must be mounted after AuthMiddleware.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Access denied. Admins only.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*Claims)
	return claims, ok
}

// bearerToken returns the second space-separated part of the header.
func bearerToken(header string) string {
	_, token, found := strings.Cut(header, " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
