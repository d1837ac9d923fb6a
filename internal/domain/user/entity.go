package user

import "time"

// User is a login principal. Admins have no employee record; employees
// reference theirs.
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	IsAdmin      bool
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
