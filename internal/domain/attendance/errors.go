package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrAttendanceAssembly means a record references an employee or
	// department that no longer resolves; the whole request fails.
	ErrAttendanceAssembly = errors.New("failed to assemble attendance record")
)
