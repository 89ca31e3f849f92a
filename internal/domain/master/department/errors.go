package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentDeleted    = errors.New("department has been deleted")
	ErrDepartmentNameExists = errors.New("department with this name already exists")
)
