package cities

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Galina9911/test-api/internal/domain"
	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/pkg/utils"
	"github.com/Galina9911/test-api/pkg/validate"
)

//go:generate mockgen -source=cities.go -destination=mock_cities.go -package=cities

type Service interface {
	CreateCity(ctx context.Context, name, country string) (*domain.City, error)
}

type CityHandler struct {
	cityService Service
}

func New(cityService Service) *CityHandler {
	return &CityHandler{
		cityService: cityService,
	}
}

// CreateCity godoc
//
//	@Summary	Add a city
//	@Tags		Cities
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateCityRequestDTO	true	"City"
//	@Success	200		{object}	dto.CityDTO
//	@Failure	400		{object}	utils.Response	"Both 'name' and 'country' are required"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/cities [post]
func (h *CityHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Both 'name' and 'country' are required")
		return
	}
	city, err := h.cityService.CreateCity(r.Context(), req.Name, req.Country)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CityDTO{
		ID:      city.ID,
		Name:    city.Name,
		Country: city.Country,
	})
}
