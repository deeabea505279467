package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrledger/hr-backend-go/internal/domain/company"
	"github.com/hrledger/hr-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Get implements CompanyHandler.
func (h *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.companyService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, info)
}

// Save implements CompanyHandler. PUT semantics over the singleton row.
func (h *CompanyHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req company.SaveInfoRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save company info decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.companyService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save company info service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company info saved", saved)
}
