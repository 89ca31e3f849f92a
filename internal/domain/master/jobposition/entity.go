package jobposition

import "time"

type JobPosition struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}
