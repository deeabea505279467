package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/account"
	"github.com/hrledger/hr-backend-go/internal/handler/http/response"
)

// AccountHandler serves the admin account register and the employee
// self-service routes under /me.
type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListCheckIns(w http.ResponseWriter, r *http.Request)

	GetOwnProfile(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	ListOwnCheckIns(w http.ResponseWriter, r *http.Request)
	UpdateOwnPassword(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	accountService account.AccountService
}

func NewAccountHandler(accountService account.AccountService) AccountHandler {
	return &AccountHandlerImpl{accountService: accountService}
}

// Create implements AccountHandler.
func (h *AccountHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req account.CreateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create account decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.accountService.CreateAccount(r.Context(), req)
	if err != nil {
		slog.Error("Create account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee account created", created)
}

// List implements AccountHandler.
func (h *AccountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		slog.Error("List accounts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}

// SetActive implements AccountHandler.
func (h *AccountHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	var req account.SetActiveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetActive decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	if err := h.accountService.SetAccountActive(r.Context(), req); err != nil {
		slog.Error("SetActive service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account status updated", nil)
}

// ResetPassword implements AccountHandler.
func (h *AccountHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req account.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ResetPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	if err := h.accountService.ResetPassword(r.Context(), req); err != nil {
		slog.Error("ResetPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password reset", nil)
}

// Delete implements AccountHandler.
func (h *AccountHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.accountService.DeleteAccount(r.Context(), chi.URLParam(r, "userID")); err != nil {
		slog.Error("Delete account service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee account deleted", nil)
}

// ListCheckIns implements AccountHandler.
func (h *AccountHandlerImpl) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	filter := account.LogFilter{}

	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	logs, err := h.accountService.ListCheckIns(r.Context(), filter)
	if err != nil {
		slog.Error("ListCheckIns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// GetOwnProfile implements AccountHandler.
func (h *AccountHandlerImpl) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	prof, err := h.accountService.GetOwnProfile(r.Context())
	if err != nil {
		slog.Error("GetOwnProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, prof)
}

// CheckIn implements AccountHandler.
func (h *AccountHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	checkIn, err := h.accountService.CheckIn(r.Context(), r.RemoteAddr, r.UserAgent())
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", checkIn)
}

// ListOwnCheckIns implements AccountHandler.
func (h *AccountHandlerImpl) ListOwnCheckIns(w http.ResponseWriter, r *http.Request) {
	logs, err := h.accountService.ListOwnRecentCheckIns(r.Context())
	if err != nil {
		slog.Error("ListOwnCheckIns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// UpdateOwnPassword implements AccountHandler.
func (h *AccountHandlerImpl) UpdateOwnPassword(w http.ResponseWriter, r *http.Request) {
	var req account.UpdateOwnPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOwnPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.accountService.UpdateOwnPassword(r.Context(), req); err != nil {
		slog.Error("UpdateOwnPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password updated", nil)
}
