package response

import (
	"errors"
	"net/http"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/auth"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/department"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/observationtype"
	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/role"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired session")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentDeleted):
		NotFound(w, "Department has been deleted")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department with this name already exists")

	// Job position domain errors
	case errors.Is(err, jobposition.ErrJobPositionNotFound):
		NotFound(w, "Job position not found")
	case errors.Is(err, jobposition.ErrJobPositionNameExists):
		Conflict(w, "Job position with this name already exists")

	// Observation type domain errors
	case errors.Is(err, observationtype.ErrObservationTypeNotFound):
		NotFound(w, "Observation type not found")
	case errors.Is(err, observationtype.ErrObservationTypeNameExists):
		Conflict(w, "Observation type with this name already exists")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "DNI already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAssembly):
		InternalServerError(w, "Failed to assemble attendance record")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
