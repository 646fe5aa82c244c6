package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/internal/service/authservice"
	"github.com/Galina9911/test-api/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	IssueToken(role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken godoc
//
//	@Summary		Issue a token
//	@Description	Get a bearer token for the admin or user role, valid for 30 minutes
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO	true	"Requested role"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid role"
//	@Failure		500		{object}	utils.Response	"Error generating token"
//	@Router			/auth/token [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.IssueToken(req.Role)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidRole) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid role. Use 'admin' or 'user'")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}
