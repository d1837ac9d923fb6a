package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/hr-backend-go/internal/pkg/timeofday"
)

// Salary holds the payroll accumulators the import engine mutates.
// FinalAmount must always equal Base minus Deductions; every adjustment
// applies the same delta to Deductions and FinalAmount in lockstep.
type Salary struct {
	Base        decimal.Decimal
	Deductions  decimal.Decimal
	FinalAmount decimal.Decimal
	LastUpdated time.Time
}

// ApplyDeduction adds amount to Deductions and subtracts it from
// FinalAmount, keeping the accumulators consistent.
func (s *Salary) ApplyDeduction(amount decimal.Decimal, now time.Time) {
	s.Deductions = s.Deductions.Add(amount)
	s.FinalAmount = s.FinalAmount.Sub(amount)
	s.LastUpdated = now
}

// Touch records an adjustment that changed no accumulator.
func (s *Salary) Touch(now time.Time) {
	s.LastUpdated = now
}

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	DepartmentID string
	Salary       Salary
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
	OfficeOpen     *timeofday.TimeOfDay
	OfficeClose    *timeofday.TimeOfDay
}

// OfficeWindow returns the joined department office hours, if resolved.
func (e Employee) OfficeWindow() (timeofday.Window, bool) {
	if e.OfficeOpen == nil || e.OfficeClose == nil {
		return timeofday.Window{}, false
	}
	return timeofday.Window{Open: *e.OfficeOpen, Close: *e.OfficeClose}, true
}
