package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"

	"github.com/sigea-hr/attendance-backend-go/internal/pkg/validator"
)

// View is an attendance record with its references resolved for display and
// export. The store keeps ids only; list queries dereference employee,
// department, job position and observation type.
type View struct {
	ID                 string              `json:"uid"`
	Employee           EmployeeRef         `json:"employee"`
	Date               string              `json:"created_at_date"`
	FirstCheckInTime   *time.Time          `json:"first_check_in_time"`
	FirstCheckOutTime  *time.Time          `json:"first_check_out_time"`
	SecondCheckInTime  *time.Time          `json:"second_check_in_time"`
	SecondCheckOutTime *time.Time          `json:"second_check_out_time"`
	ObservationType    *ObservationTypeRef `json:"observation_type"`
	Observation        *string             `json:"observation"`
	WorkHours          float64             `json:"work_hours"`
	Overtime           float64             `json:"overtime"`
	CreatedAt          time.Time           `json:"created_at"`
}

type EmployeeRef struct {
	ID          string          `json:"uid"`
	Names       string          `json:"names"`
	Lastname    string          `json:"lastname"`
	DNI         string          `json:"dni"`
	Department  DepartmentRef   `json:"department"`
	JobPosition *JobPositionRef `json:"job_position"`
}

type DepartmentRef struct {
	ID   string `json:"uid"`
	Name string `json:"name"`
}

type JobPositionRef struct {
	ID   string `json:"uid"`
	Name string `json:"name"`
}

type ObservationTypeRef struct {
	ID   string `json:"uid"`
	Name string `json:"name"`
}

// ListFilter carries the user-supplied filters before resolution. A nil field
// is unconstrained; department "Todos" means all departments.
type ListFilter struct {
	DNI          *string
	Date         *string
	DepartmentID *string
	SortAsc      bool
	Page         int
	Limit        int
}

// Filter is the repository-level query after the service resolved dni and
// department down to employee ids. A nil EmployeeIDs slice is unconstrained.
type Filter struct {
	Date        *string
	EmployeeIDs []string
	SortAsc     bool
	Page        int
	Limit       int
}

type GenerateAttendanceRequest struct {
	DepartmentID string `json:"department"`
	Date         string `json:"date"`
}

func (r *GenerateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if _, err := date.ParseDate(r.Date); err != nil {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be yyyy-MM-dd"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GenerateAttendanceResponse reports what a generation run did. Skipped
// counts employees that already had a record for the day.
type GenerateAttendanceResponse struct {
	DepartmentID string `json:"department"`
	Date         string `json:"date"`
	Created      int    `json:"created"`
	Skipped      int    `json:"skipped"`
}

type UpdateAttendanceRequest struct {
	ID                 string  `json:"-"`
	FirstCheckInTime   *string `json:"first_check_in_time"`
	FirstCheckOutTime  *string `json:"first_check_out_time"`
	SecondCheckInTime  *string `json:"second_check_in_time"`
	SecondCheckOutTime *string `json:"second_check_out_time"`
	ObservationTypeID  *string `json:"observation_type"`
	Observation        *string `json:"observation"`
}

// Validate checks the form ordering rules: within a pair the entry precedes
// the exit, the second shift starts after the first ends, and a second shift
// without a complete first pair is rejected.
func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	parsed := make(map[string]*time.Time, 4)
	fields := []struct {
		name  string
		value *string
	}{
		{"first_check_in_time", r.FirstCheckInTime},
		{"first_check_out_time", r.FirstCheckOutTime},
		{"second_check_in_time", r.SecondCheckInTime},
		{"second_check_out_time", r.SecondCheckOutTime},
	}
	for _, f := range fields {
		if f.value == nil || validator.IsEmpty(*f.value) {
			continue
		}
		t, ok := validator.IsValidTimestamp(*f.value)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be an RFC3339 timestamp"})
			continue
		}
		parsed[f.name] = &t
	}

	firstIn := parsed["first_check_in_time"]
	firstOut := parsed["first_check_out_time"]
	secondIn := parsed["second_check_in_time"]
	secondOut := parsed["second_check_out_time"]

	if firstIn != nil && firstOut != nil && firstOut.Before(*firstIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_check_out_time",
			Message: "must not be before first_check_in_time",
		})
	}
	if (secondIn != nil || secondOut != nil) && (firstIn == nil || firstOut == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "second_check_in_time",
			Message: "second shift requires a complete first shift",
		})
	}
	if secondIn != nil && firstOut != nil && secondIn.Before(*firstOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "second_check_in_time",
			Message: "must not be before first_check_out_time",
		})
	}
	if secondIn != nil && secondOut != nil && secondOut.Before(*secondIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "second_check_out_time",
			Message: "must not be before second_check_in_time",
		})
	}

	if r.Observation != nil && !validator.IsEmpty(*r.Observation) && r.ObservationTypeID == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "observation",
			Message: "observation requires an observation type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
