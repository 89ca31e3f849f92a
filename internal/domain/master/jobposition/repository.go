package jobposition

import "context"

type JobPositionRepository interface {
	Create(ctx context.Context, jobPosition JobPosition) (JobPosition, error)
	GetByID(ctx context.Context, id string) (JobPosition, error)
	List(ctx context.Context) ([]JobPosition, error)
	ListPaginated(ctx context.Context, page, limit int) ([]JobPosition, int64, error)
	Update(ctx context.Context, req UpdateJobPositionRequest) error
	SoftDelete(ctx context.Context, id string) error
}
