package observationtype

import "context"

type ObservationTypeRepository interface {
	Create(ctx context.Context, observationType ObservationType) (ObservationType, error)
	GetByID(ctx context.Context, id string) (ObservationType, error)
	List(ctx context.Context) ([]ObservationType, error)
	ListPaginated(ctx context.Context, page, limit int) ([]ObservationType, int64, error)
	Update(ctx context.Context, req UpdateObservationTypeRequest) error
	SoftDelete(ctx context.Context, id string) error
}
