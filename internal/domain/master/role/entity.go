package role

import "time"

// Role is a read-only reference entity; rows are seeded out of band.
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
