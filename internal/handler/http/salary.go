package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/salary"
	"github.com/bavaria-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/bavaria-hr/attendance-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	MonthlySalary(w http.ResponseWriter, r *http.Request)
	AllEmployeesMonthlySalary(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
	reportService report.ReportService
}

func NewSalaryHandler(salaryService salary.SalaryService, reportService report.ReportService) SalaryHandler {
	return &salaryHandlerImpl{
		salaryService: salaryService,
		reportService: reportService,
	}
}

// MonthlySalary implements SalaryHandler
func (h *salaryHandlerImpl) MonthlySalary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	result, err := h.salaryService.MonthlySalary(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AllEmployeesMonthlySalary implements SalaryHandler
func (h *salaryHandlerImpl) AllEmployeesMonthlySalary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	result, err := h.salaryService.AllEmployeesMonthlySalary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payslip implements SalaryHandler - streams the rendered PDF.
func (h *salaryHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, month, ok := yearMonth(w, r)
	if !ok {
		return
	}

	data, filename, err := h.reportService.PayslipPDF(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func yearMonth(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))
	if month < 1 || month > 12 {
		response.BadRequest(w, "Month must be between 1 and 12", nil)
		return 0, 0, false
	}
	return year, month, true
}
