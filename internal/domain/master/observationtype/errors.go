package observationtype

import "errors"

var (
	ErrObservationTypeNotFound   = errors.New("observation type not found")
	ErrObservationTypeNameExists = errors.New("observation type with this name already exists")
)
