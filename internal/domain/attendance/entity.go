package attendance

import "time"

type Attendance struct {
	ID           string
	EmployeeID   string
	DepartmentID string

	// Date is the calendar day the record stands for, as a yyyy-MM-dd key.
	// It is distinct from CreatedAt, the instant the row was written.
	Date string

	FirstCheckInTime   *time.Time
	FirstCheckOutTime  *time.Time
	SecondCheckInTime  *time.Time
	SecondCheckOutTime *time.Time

	ObservationTypeID *string
	Observation       *string

	WorkHours float64
	Overtime  float64

	CreatedAt time.Time
	DeletedAt *time.Time
}
