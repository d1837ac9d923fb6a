package employee

import "time"

type SalaryResponse struct {
	Base        string    `json:"base"`
	Deductions  string    `json:"deductions"`
	FinalAmount string    `json:"final_amount"`
	LastUpdated time.Time `json:"last_updated"`
}

type EmployeeResponse struct {
	ID             string         `json:"id"`
	EmployeeCode   string         `json:"employee_code"`
	FullName       string         `json:"full_name"`
	Email          string         `json:"email"`
	DepartmentID   string         `json:"department_id"`
	DepartmentName *string        `json:"department_name,omitempty"`
	Salary         SalaryResponse `json:"salary"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		Email:          e.Email,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Salary: SalaryResponse{
			Base:        e.Salary.Base.String(),
			Deductions:  e.Salary.Deductions.String(),
			FinalAmount: e.Salary.FinalAmount.String(),
			LastUpdated: e.Salary.LastUpdated,
		},
	}
}
