package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/observationtype"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/database"
)

type observationTypeRepositoryImpl struct {
	db *database.DB
}

func NewObservationTypeRepository(db *database.DB) observationtype.ObservationTypeRepository {
	return &observationTypeRepositoryImpl{db: db}
}

// Create implements observationtype.ObservationTypeRepository.
func (r *observationTypeRepositoryImpl) Create(ctx context.Context, ot observationtype.ObservationType) (observationtype.ObservationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO observation_types (id, name, description, created_at)
		VALUES (gen_random_uuid(), $1, $2, NOW())
		RETURNING id, name, description, created_at
	`

	var result observationtype.ObservationType
	err := q.QueryRow(ctx, query, ot.Name, ot.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return observationtype.ObservationType{}, observationtype.ErrObservationTypeNameExists
		}
		return observationtype.ObservationType{}, fmt.Errorf("failed to create observation type: %w", err)
	}

	return result, nil
}

// GetByID implements observationtype.ObservationTypeRepository.
func (r *observationTypeRepositoryImpl) GetByID(ctx context.Context, id string) (observationtype.ObservationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, deleted_at
		FROM observation_types
		WHERE id = $1 AND deleted_at IS NULL
	`

	var result observationtype.ObservationType
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
		&result.DeletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return observationtype.ObservationType{}, observationtype.ErrObservationTypeNotFound
		}
		return observationtype.ObservationType{}, fmt.Errorf("failed to get observation type: %w", err)
	}

	return result, nil
}

// List implements observationtype.ObservationTypeRepository.
func (r *observationTypeRepositoryImpl) List(ctx context.Context) ([]observationtype.ObservationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at
		FROM observation_types
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list observation types: %w", err)
	}
	defer rows.Close()

	var types []observationtype.ObservationType
	for rows.Next() {
		var ot observationtype.ObservationType
		err := rows.Scan(
			&ot.ID,
			&ot.Name,
			&ot.Description,
			&ot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation type: %w", err)
		}
		types = append(types, ot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return types, nil
}

// ListPaginated implements observationtype.ObservationTypeRepository.
func (r *observationTypeRepositoryImpl) ListPaginated(ctx context.Context, page, limit int) ([]observationtype.ObservationType, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM observation_types WHERE deleted_at IS NULL`
	if err := q.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count observation types: %w", err)
	}

	query := `
		SELECT id, name, description, created_at
		FROM observation_types
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list observation types: %w", err)
	}
	defer rows.Close()

	var types []observationtype.ObservationType
	for rows.Next() {
		var ot observationtype.ObservationType
		err := rows.Scan(
			&ot.ID,
			&ot.Name,
			&ot.Description,
			&ot.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan observation type: %w", err)
		}
		types = append(types, ot)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return types, total, nil
}

// Update implements observationtype.ObservationTypeRepository.
func (r *observationTypeRepositoryImpl) Update(ctx context.Context, req observationtype.UpdateObservationTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE observation_types
		SET name = $1, description = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.Description, req.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return observationtype.ErrObservationTypeNameExists
		}
		return fmt.Errorf("failed to update observation type: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return observationtype.ErrObservationTypeNotFound
	}

	return nil
}

// SoftDelete implements observationtype.ObservationTypeRepository.
func (r *observationTypeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE observation_types
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete observation type: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return observationtype.ErrObservationTypeNotFound
	}

	return nil
}
