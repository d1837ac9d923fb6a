package leave

import (
	"time"

	"github.com/staffdesk/hr-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Reason     string `json:"reason"`
}

func (r SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	}
	if !validator.IsInSlice(r.LeaveType, []string{string(LeaveTypeSick), string(LeaveTypePersonal), string(LeaveTypeOthers)}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "Leave type can only be Sick, Personal or Others"})
	}
	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "Date must be in YYYY-MM-DD format"})
	}
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "Last date of leave cannot be before the first"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "Reason for leave is missing"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplicationResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	EmployeeCode *string   `json:"employee_code,omitempty"`
	LeaveType    LeaveType `json:"leave_type"`
	FromDate     time.Time `json:"from_date"`
	ToDate       time.Time `json:"to_date"`
	Reason       string    `json:"reason"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
}

func ToResponse(l LeaveApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		EmployeeCode: l.EmployeeCode,
		LeaveType:    l.LeaveType,
		FromDate:     l.FromDate,
		ToDate:       l.ToDate,
		Reason:       l.Reason,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
	}
}
