package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/salary"
	"github.com/jung-kurt/gofpdf"
)

// ReportService renders salary breakdowns into downloadable documents.
type ReportService interface {
	// PayslipPDF renders one employee's monthly breakdown as a PDF.
	PayslipPDF(ctx context.Context, employeeID string, year int, month int) ([]byte, string, error)
}

type ReportServiceImpl struct {
	salaryService salary.SalaryService
}

func NewReportService(salaryService salary.SalaryService) ReportService {
	return &ReportServiceImpl{salaryService: salaryService}
}

// PayslipPDF implements ReportService. The second return value is the
// suggested filename.
func (s *ReportServiceImpl) PayslipPDF(ctx context.Context, employeeID string, year int, month int) ([]byte, string, error) {
	breakdown, err := s.salaryService.MonthlySalary(ctx, employeeID, year, month)
	if err != nil {
		return nil, "", err
	}

	period := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", breakdown.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Working days: %d of %d calendar days", breakdown.WorkingDays, breakdown.TotalDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Present: %d  Absent: %d  Leave: %d (LWP: %d)",
		breakdown.PresentDays, breakdown.AbsentDays, breakdown.LeaveDays, breakdown.LWPDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Late minutes: %d  Early leave minutes: %d",
		breakdown.LateMinutes, breakdown.EarlyLeaveMinutes))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Duty hours: %.2f done of %.2f due", breakdown.DoneDutyHours, breakdown.DueDutyHours))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Salary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", breakdown.GrossSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Per day: %s", breakdown.PerDaySalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("LWP deduction: -%s", breakdown.LWPDeduction.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Late penalty: -%s", breakdown.LatePenalty.StringFixed(2)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Final: %s", breakdown.FinalSalary.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Approved leave by type:")
	pdf.Ln(6)
	for _, lt := range leave.AllTypes {
		pdf.Cell(0, 6, fmt.Sprintf("  %s: %d", lt, breakdown.LeaveSummary[lt]))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", breakdown.EmployeeID, year, month)
	return buf.Bytes(), filename, nil
}
