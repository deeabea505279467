package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/company"
	"github.com/hrledger/hr-backend-go/internal/domain/summary"
	"github.com/hrledger/hr-backend-go/internal/handler/http/response"
)

type SummaryHandler interface {
	GetEmployeeSummary(w http.ResponseWriter, r *http.Request)
	ExportEmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type SummaryHandlerImpl struct {
	summaryService summary.SummaryService
	companyService company.CompanyService
}

func NewSummaryHandler(summaryService summary.SummaryService, companyService company.CompanyService) SummaryHandler {
	return &SummaryHandlerImpl{
		summaryService: summaryService,
		companyService: companyService,
	}
}

// GetEmployeeSummary implements SummaryHandler.
func (h *SummaryHandlerImpl) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := h.summaryService.GetEmployeeSummary(r.Context(), employeeID)
	if err != nil {
		slog.Error("GetEmployeeSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportEmployeeSummary implements SummaryHandler. The download carries
// the company header when company info has been saved; an unset company
// record leaves those cells blank rather than failing the export.
func (h *SummaryHandlerImpl) ExportEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	result, err := h.summaryService.GetEmployeeSummary(r.Context(), employeeID)
	if err != nil {
		slog.Error("ExportEmployeeSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	var placeName, managerName string
	info, err := h.companyService.Get(r.Context())
	if err == nil {
		placeName = info.PlaceName
		managerName = info.ManagerName
	} else if !errors.Is(err, company.ErrCompanyInfoNotFound) {
		slog.Error("ExportEmployeeSummary company info error", "error", err)
		response.HandleError(w, err)
		return
	}

	exportDate := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("employee_summary_%s_%s.csv", result.Employee.EmployeeNumber, exportDate)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(w)
	records := [][]string{
		{"Company", placeName},
		{"Manager", managerName},
		{"Export Date", exportDate},
		{},
		{"Employee Number", result.Employee.EmployeeNumber},
		{"Employee Name", result.Employee.Name},
		{},
		{"Metric", "Value"},
		{"Attendance Days", strconv.Itoa(result.AttendanceDays)},
		{"Absence Days", strconv.Itoa(result.AbsenceDays)},
		{"Total Advances", formatFloat(result.TotalAdvances)},
		{"Total Bonus Days", formatFloat(result.TotalBonusDays)},
		{"Total Discount Days", formatFloat(result.TotalDiscountDays)},
		{"Total Leave Days", strconv.Itoa(result.TotalLeaveDays)},
		{"Total Overtime Days", formatFloat(result.TotalOvertimeDays)},
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			slog.Error("ExportEmployeeSummary write error", "error", err)
			return
		}
	}
	writer.Flush()
}
