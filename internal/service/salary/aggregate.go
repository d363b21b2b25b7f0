package salary

import (
	"math"

	"github.com/bavaria-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/leave"
	"github.com/bavaria-hr/attendance-backend-go/internal/domain/salary"
	attendancesvc "github.com/bavaria-hr/attendance-backend-go/internal/service/attendance"
)

// allowedBreakMinutes is the unpenalized break length per day.
const allowedBreakMinutes = 60

// Reduce folds one month of attendance and leave rows into the monthly
// statistics in a single pass. Every statistic comes from the same snapshot,
// so the counts can never disagree with each other.
func Reduce(attendances []attendance.Attendance, leaves []leave.Leave) salary.MonthlyStats {
	stats := salary.MonthlyStats{
		LeaveSummary: make(map[leave.Type]int, len(leave.AllTypes)),
	}
	for _, t := range leave.AllTypes {
		stats.LeaveSummary[t] = 0
	}

	var dutyHours float64
	for _, a := range attendances {
		switch a.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
			stats.LateMinutesTotal += a.LateMinutes
			stats.EarlyLeaveMinutesTotal += a.EarlyLeaveMinutes
			if a.BreakMinutes != nil && *a.BreakMinutes > allowedBreakMinutes {
				stats.BreakLateMinutes += *a.BreakMinutes - allowedBreakMinutes
			}
			dutyHours += attendancesvc.WorkedHours(a.CheckIn, a.CheckOut, a.BreakMinutes)
		case attendance.StatusAbsent:
			stats.AbsentDays++
		case attendance.StatusOnLeave:
			// Counted from the leave rows, not the attendance mirror.
		}
	}
	stats.DoneDutyHours = math.Round(dutyHours*100) / 100

	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		stats.LeaveDays++
		if _, known := stats.LeaveSummary[l.Type]; known {
			stats.LeaveSummary[l.Type]++
		}
		if l.Type == leave.TypeUnpaid {
			stats.LWPDays++
		}
	}

	return stats
}
