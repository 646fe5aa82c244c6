package info

import (
	"net/http"

	"github.com/Galina9911/test-api/internal/dto"
	"github.com/Galina9911/test-api/pkg/utils"
)

const customHeader = "X-Custom-Header"

var companyInfo = dto.CompanyInfoDTO{
	Name:         "ООО Тестовая Компания",
	Address:      "г. Москва, ул. Примерная, д. 10",
	Phone:        "+7 900 123 45 67",
	WorkingHours: "Пн-Пт 9:00 - 18:00",
}

type InfoHandler struct{}

func New() *InfoHandler {
	return &InfoHandler{}
}

// CompanyInfo godoc
//
//	@Summary	Company details
//	@Tags		Info
//	@Produce	json
//	@Success	200	{object}	dto.CompanyInfoDTO
//	@Router		/company-info [get]
func (h *InfoHandler) CompanyInfo(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, companyInfo)
}

// SecureEndpoint godoc
//
//	@Summary		Header-protected endpoint
//	@Description	Succeeds only when X-Custom-Header is present
//	@Tags			Info
//	@Produce		json
//	@Security		BearerAuth
//	@Param			X-Custom-Header	header		string	true	"Any value"
//	@Success		200				{object}	dto.MessageResponseDTO
//	@Failure		400				{object}	utils.Response	"Missing required header: X-Custom-Header"
//	@Router			/secure-endpoint [get]
func (h *InfoHandler) SecureEndpoint(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get(customHeader) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required header: "+customHeader)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Request completed successfully"})
}

// Error godoc
//
//	@Summary		Always fails
//	@Description	Panics on purpose. The recoverer middleware answers 500.
//	@Tags			Info
//	@Failure		500
//	@Router			/error [get]
func (h *InfoHandler) Error(_ http.ResponseWriter, _ *http.Request) {
	panic("intentional server error")
}
