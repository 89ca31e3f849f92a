package employee

import "github.com/sigea-hr/attendance-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Names         string  `json:"names"`
	Lastname      string  `json:"lastname"`
	DNI           string  `json:"dni"`
	Email         *string `json:"email,omitempty"`
	BirthDate     string  `json:"birth_date"`
	HiringDate    string  `json:"hiring_date"`
	PhoneCode     string  `json:"phone_code"`
	PhoneNumber   string  `json:"phone_number"`
	Salary        float64 `json:"salary"`
	DepartmentID  string  `json:"department"`
	JobPositionID string  `json:"job_position"`
	RoleID        string  `json:"role"`
	IsActive      bool    `json:"is_active"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Names) {
		errs = append(errs, validator.ValidationError{Field: "names", Message: "names is required"})
	}
	if validator.IsEmpty(r.Lastname) {
		errs = append(errs, validator.ValidationError{Field: "lastname", Message: "lastname is required"})
	}
	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{Field: "dni", Message: "dni must be 8 digits"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if _, ok := validator.IsValidDate(r.BirthDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "birth_date", Message: "birth_date must be yyyy-MM-dd"})
	}
	if _, ok := validator.IsValidDate(r.HiringDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hiring_date", Message: "hiring_date must be yyyy-MM-dd"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.JobPositionID) {
		errs = append(errs, validator.ValidationError{Field: "job_position", Message: "job_position is required"})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Names         string  `json:"names"`
	Lastname      string  `json:"lastname"`
	DNI           string  `json:"dni"`
	Email         *string `json:"email,omitempty"`
	BirthDate     string  `json:"birth_date"`
	HiringDate    string  `json:"hiring_date"`
	PhoneCode     string  `json:"phone_code"`
	PhoneNumber   string  `json:"phone_number"`
	Salary        float64 `json:"salary"`
	DepartmentID  string  `json:"department"`
	JobPositionID string  `json:"job_position"`
	RoleID        string  `json:"role"`
	IsActive      bool    `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Names:         r.Names,
		Lastname:      r.Lastname,
		DNI:           r.DNI,
		Email:         r.Email,
		BirthDate:     r.BirthDate,
		HiringDate:    r.HiringDate,
		Salary:        r.Salary,
		DepartmentID:  r.DepartmentID,
		JobPositionID: r.JobPositionID,
		RoleID:        r.RoleID,
	}
	return create.Validate()
}

// Filter narrows the employee list; nil fields are unconstrained.
type Filter struct {
	DepartmentID *string
	Search       *string // matches dni or name fragments
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             string  `json:"uid"`
	Names          string  `json:"names"`
	Lastname       string  `json:"lastname"`
	DNI            string  `json:"dni"`
	Email          *string `json:"email"`
	BirthDate      string  `json:"birth_date"`
	HiringDate     string  `json:"hiring_date"`
	PhoneCode      string  `json:"phone_code"`
	PhoneNumber    string  `json:"phone_number"`
	Salary         float64 `json:"salary"`
	DepartmentID   string  `json:"department"`
	Department     *string `json:"department_name,omitempty"`
	JobPositionID  string  `json:"job_position"`
	JobPosition    *string `json:"job_position_name,omitempty"`
	RoleID         string  `json:"role"`
	IsActive       bool    `json:"is_active"`
	HasAuthAccount bool    `json:"has_auth_account"`
	CreatedAt      string  `json:"created_at"`
}
