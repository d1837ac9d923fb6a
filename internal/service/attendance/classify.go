package attendance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
)

var two = decimal.NewFromInt(2)

// dayOutcome is one classified day: the status, the portion of a day's
// salary credited, and the deduction to apply to the accumulators.
type dayOutcome struct {
	Status    attendance.Status
	DaySalary decimal.Decimal
	Deduction decimal.Decimal
}

// oneDaySalary is the employee's base salary divided by the number of days
// in the record's month.
func oneDaySalary(base decimal.Decimal, date time.Time) decimal.Decimal {
	daysInMonth := time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
	return base.Div(decimal.NewFromInt(int64(daysInMonth)))
}

// classifyNoPunch decides a day with no punches: leave if an approved
// application covers the date (paid only for sick leave), absent otherwise.
func classifyNoPunch(approved *leave.LeaveApplication, oneDay decimal.Decimal) dayOutcome {
	if approved == nil {
		return dayOutcome{
			Status:    attendance.StatusAbsent,
			DaySalary: decimal.Zero,
			Deduction: oneDay,
		}
	}
	if approved.LeaveType.Paid() {
		return dayOutcome{
			Status:    attendance.StatusLeave,
			DaySalary: oneDay,
			Deduction: decimal.Zero,
		}
	}
	return dayOutcome{
		Status:    attendance.StatusLeave,
		DaySalary: decimal.Zero,
		Deduction: oneDay,
	}
}

// classifyPunches decides a punched day: half day when presence inside the
// office window is at most half the window, present otherwise.
func classifyPunches(presence, windowDuration time.Duration, oneDay decimal.Decimal) dayOutcome {
	if presence <= windowDuration/2 {
		half := oneDay.Div(two)
		return dayOutcome{
			Status:    attendance.StatusHalfDay,
			DaySalary: half,
			Deduction: half,
		}
	}
	return dayOutcome{
		Status:    attendance.StatusPresent,
		DaySalary: oneDay,
		Deduction: decimal.Zero,
	}
}
