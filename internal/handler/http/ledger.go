package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/ledger"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/advance"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/bonus"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/discount"
	"github.com/hrledger/hr-backend-go/internal/domain/ledger/overtime"
	"github.com/hrledger/hr-backend-go/internal/handler/http/response"
)

// LedgerHandler serves the four adjustment ledgers. All four share the
// same route shape: POST /, GET /, PUT /{id}, DELETE /{id}.
type LedgerHandler interface {
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)
	UpdateAdvance(w http.ResponseWriter, r *http.Request)
	DeleteAdvance(w http.ResponseWriter, r *http.Request)

	CreateBonus(w http.ResponseWriter, r *http.Request)
	ListBonuses(w http.ResponseWriter, r *http.Request)
	UpdateBonus(w http.ResponseWriter, r *http.Request)
	DeleteBonus(w http.ResponseWriter, r *http.Request)

	CreateDiscount(w http.ResponseWriter, r *http.Request)
	ListDiscounts(w http.ResponseWriter, r *http.Request)
	UpdateDiscount(w http.ResponseWriter, r *http.Request)
	DeleteDiscount(w http.ResponseWriter, r *http.Request)

	CreateOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertime(w http.ResponseWriter, r *http.Request)
	UpdateOvertime(w http.ResponseWriter, r *http.Request)
	DeleteOvertime(w http.ResponseWriter, r *http.Request)
}

type LedgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &LedgerHandlerImpl{ledgerService: ledgerService}
}

// CreateAdvance implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ledgerService.CreateAdvance(r.Context(), req)
	if err != nil {
		slog.Error("CreateAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance created", created)
}

// ListAdvances implements LedgerHandler.
func (h *LedgerHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	advances, err := h.ledgerService.ListAdvances(r.Context())
	if err != nil {
		slog.Error("ListAdvances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// UpdateAdvance implements LedgerHandler.
func (h *LedgerHandlerImpl) UpdateAdvance(w http.ResponseWriter, r *http.Request) {
	var req advance.UpdateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.ledgerService.UpdateAdvance(r.Context(), req); err != nil {
		slog.Error("UpdateAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance updated", nil)
}

// DeleteAdvance implements LedgerHandler.
func (h *LedgerHandlerImpl) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.DeleteAdvance(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance deleted", nil)
}

// CreateBonus implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateBonusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateBonus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ledgerService.CreateBonus(r.Context(), req)
	if err != nil {
		slog.Error("CreateBonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created", created)
}

// ListBonuses implements LedgerHandler.
func (h *LedgerHandlerImpl) ListBonuses(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.ledgerService.ListBonuses(r.Context())
	if err != nil {
		slog.Error("ListBonuses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bonuses)
}

// UpdateBonus implements LedgerHandler.
func (h *LedgerHandlerImpl) UpdateBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.UpdateBonusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateBonus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.ledgerService.UpdateBonus(r.Context(), req); err != nil {
		slog.Error("UpdateBonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated", nil)
}

// DeleteBonus implements LedgerHandler.
func (h *LedgerHandlerImpl) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.DeleteBonus(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteBonus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted", nil)
}

// CreateDiscount implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var req discount.CreateDiscountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDiscount decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ledgerService.CreateDiscount(r.Context(), req)
	if err != nil {
		slog.Error("CreateDiscount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Discount created", created)
}

// ListDiscounts implements LedgerHandler.
func (h *LedgerHandlerImpl) ListDiscounts(w http.ResponseWriter, r *http.Request) {
	discounts, err := h.ledgerService.ListDiscounts(r.Context())
	if err != nil {
		slog.Error("ListDiscounts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, discounts)
}

// UpdateDiscount implements LedgerHandler.
func (h *LedgerHandlerImpl) UpdateDiscount(w http.ResponseWriter, r *http.Request) {
	var req discount.UpdateDiscountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDiscount decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.ledgerService.UpdateDiscount(r.Context(), req); err != nil {
		slog.Error("UpdateDiscount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Discount updated", nil)
}

// DeleteDiscount implements LedgerHandler.
func (h *LedgerHandlerImpl) DeleteDiscount(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.DeleteDiscount(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteDiscount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Discount deleted", nil)
}

// CreateOvertime implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ledgerService.CreateOvertime(r.Context(), req)
	if err != nil {
		slog.Error("CreateOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime entry created", created)
}

// ListOvertime implements LedgerHandler.
func (h *LedgerHandlerImpl) ListOvertime(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledgerService.ListOvertime(r.Context())
	if err != nil {
		slog.Error("ListOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// UpdateOvertime implements LedgerHandler.
func (h *LedgerHandlerImpl) UpdateOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.ledgerService.UpdateOvertime(r.Context(), req); err != nil {
		slog.Error("UpdateOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime entry updated", nil)
}

// DeleteOvertime implements LedgerHandler.
func (h *LedgerHandlerImpl) DeleteOvertime(w http.ResponseWriter, r *http.Request) {
	if err := h.ledgerService.DeleteOvertime(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime entry deleted", nil)
}
