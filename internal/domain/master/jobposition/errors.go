package jobposition

import "errors"

var (
	ErrJobPositionNotFound   = errors.New("job position not found")
	ErrJobPositionNameExists = errors.New("job position with this name already exists")
)
