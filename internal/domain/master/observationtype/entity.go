package observationtype

import "time"

type ObservationType struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}
