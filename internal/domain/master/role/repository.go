package role

import "context"

type RoleRepository interface {
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context) ([]Role, error)
}
