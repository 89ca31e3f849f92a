package employee

import "time"

type Employee struct {
	// ID is assigned at creation and never changes: it is the auth provider
	// uid when the employee got an account, otherwise a generated UUID.
	ID             string
	Names          string
	Lastname       string
	DNI            string
	Email          *string
	BirthDate      string
	HiringDate     string
	PhoneCode      string
	PhoneNumber    string
	Salary         float64
	DepartmentID   string
	JobPositionID  string
	RoleID         string
	IsActive       bool
	HasAuthAccount bool
	CreatedAt      time.Time
	DeletedAt      *time.Time

	// Denormalized names filled by list queries
	DepartmentName  *string
	JobPositionName *string
	RoleName        *string
}
