package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/pkg/utils"
	"github.com/Galina9911/test-api/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

type Service interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Replace(ctx context.Context, user *domain.User) error
	Patch(ctx context.Context, id int, patch domain.UserPatch) error
	UpdateCity(ctx context.Context, id, cityID int) error
	Delete(ctx context.Context, id int) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List godoc
//
//	@Summary		List users
//	@Description	Get every user ordered by id
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserDTO
//	@Failure		401	{object}	utils.Response	"Access denied, token missing"
//	@Failure		403	{object}	utils.Response	"Invalid token"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserDTO(u))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Create godoc
//
//	@Summary		Create a user
//	@Description	Create a user. Only name is required.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateUserRequestDTO	true	"User"
//	@Success		200		{object}	dto.UserDTO
//	@Failure		400		{object}	utils.Response	"Field name is required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		zap.L().Debug("invalid create user request", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Field name is required")
		return
	}
	user, err := h.userService.Create(r.Context(), req.ToDomain())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(*user))
}

// Replace godoc
//
//	@Summary		Replace a user
//	@Description	Overwrite every field of a user. All fields are required.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.ReplaceUserRequestDTO	true	"User"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"All fields must be filled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/{id} [put]
func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req dto.ReplaceUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		zap.L().Debug("invalid replace user request", zap.Int("id", id), zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "All fields must be filled")
		return
	}
	if err := h.userService.Replace(r.Context(), req.ToDomain(id)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User information fully updated"})
}

// Patch godoc
//
//	@Summary		Update a user partially
//	@Description	Update city and/or phone. Fields left out keep their values.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.PatchUserRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"At least one field is required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/{id} [patch]
func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req dto.PatchUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.HasValues() {
		utils.RespondWithError(w, http.StatusBadRequest, "At least one field is required for update")
		return
	}
	if err := h.userService.Patch(r.Context(), id, req.ToDomain()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User data updated successfully"})
}

// UpdateCity godoc
//
//	@Summary		Move a user to another city
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.UpdateCityRequestDTO	true	"City"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"City ID is required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/users/{id}/city [put]
func (h *UserHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateCityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "City ID is required")
		return
	}
	if err := h.userService.UpdateCity(r.Context(), id, *req.CityID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User city updated successfully"})
}

// Delete godoc
//
//	@Summary		Delete a user
//	@Description	Admin only. Deleting a missing user still succeeds.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.MessageResponseDTO
//	@Failure		403	{object}	utils.Response	"Access denied. Admins only."
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.userService.Delete(r.Context(), id); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "User deleted successfully"})
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := utils.IntURLParam(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return 0, false
	}
	return id, true
}
