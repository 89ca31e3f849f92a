package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/master/jobposition"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/database"
)

type jobPositionRepositoryImpl struct {
	db *database.DB
}

func NewJobPositionRepository(db *database.DB) jobposition.JobPositionRepository {
	return &jobPositionRepositoryImpl{db: db}
}

// Create implements jobposition.JobPositionRepository.
func (r *jobPositionRepositoryImpl) Create(ctx context.Context, jp jobposition.JobPosition) (jobposition.JobPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_positions (id, name, description, created_at)
		VALUES (gen_random_uuid(), $1, $2, NOW())
		RETURNING id, name, description, created_at
	`

	var result jobposition.JobPosition
	err := q.QueryRow(ctx, query, jp.Name, jp.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return jobposition.JobPosition{}, jobposition.ErrJobPositionNameExists
		}
		return jobposition.JobPosition{}, fmt.Errorf("failed to create job position: %w", err)
	}

	return result, nil
}

// GetByID implements jobposition.JobPositionRepository.
func (r *jobPositionRepositoryImpl) GetByID(ctx context.Context, id string) (jobposition.JobPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, deleted_at
		FROM job_positions
		WHERE id = $1 AND deleted_at IS NULL
	`

	var result jobposition.JobPosition
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.CreatedAt,
		&result.DeletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobposition.JobPosition{}, jobposition.ErrJobPositionNotFound
		}
		return jobposition.JobPosition{}, fmt.Errorf("failed to get job position: %w", err)
	}

	return result, nil
}

// List implements jobposition.JobPositionRepository.
func (r *jobPositionRepositoryImpl) List(ctx context.Context) ([]jobposition.JobPosition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at
		FROM job_positions
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job positions: %w", err)
	}
	defer rows.Close()

	var positions []jobposition.JobPosition
	for rows.Next() {
		var jp jobposition.JobPosition
		err := rows.Scan(
			&jp.ID,
			&jp.Name,
			&jp.Description,
			&jp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job position: %w", err)
		}
		positions = append(positions, jp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

// ListPaginated implements jobposition.JobPositionRepository.
func (r *jobPositionRepositoryImpl) ListPaginated(ctx context.Context, page, limit int) ([]jobposition.JobPosition, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM job_positions WHERE deleted_at IS NULL`
	if err := q.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job positions: %w", err)
	}

	query := `
		SELECT id, name, description, created_at
		FROM job_positions
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job positions: %w", err)
	}
	defer rows.Close()

	var positions []jobposition.JobPosition
	for rows.Next() {
		var jp jobposition.JobPosition
		err := rows.Scan(
			&jp.ID,
			&jp.Name,
			&jp.Description,
			&jp.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job position: %w", err)
		}
		positions = append(positions, jp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, total, nil
}

// Update implements jobposition.JobPositionRepository.
func (r *jobPositionRepositoryImpl) Update(ctx context.Context, req jobposition.UpdateJobPositionRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_positions
		SET name = $1, description = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, req.Name, req.Description, req.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return jobposition.ErrJobPositionNameExists
		}
		return fmt.Errorf("failed to update job position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return jobposition.ErrJobPositionNotFound
	}

	return nil
}

// SoftDelete implements jobposition.JobPositionRepository.
func (r *jobPositionRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_positions
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete job position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return jobposition.ErrJobPositionNotFound
	}

	return nil
}
