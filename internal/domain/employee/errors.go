package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDNIExists        = errors.New("an employee with this dni already exists")
)
