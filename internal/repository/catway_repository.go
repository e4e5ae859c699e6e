package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/port-russell/marina-service/internal/domain"
)

// CatwayRepository defines persistence access for berths.
type CatwayRepository interface {
	GetAll(ctx context.Context) ([]domain.Catway, error)
	GetByID(ctx context.Context, id string) (*domain.Catway, error)
	GetByNumber(ctx context.Context, number int) (*domain.Catway, error)
	GetFirst(ctx context.Context) (*domain.Catway, error)
	Create(ctx context.Context, catway *domain.Catway) error
	Update(ctx context.Context, catway *domain.Catway) error
	Delete(ctx context.Context, id string) error
}

type catwayRepository struct {
	pool *pgxpool.Pool
}

// NewCatwayRepository returns a Postgres-backed implementation.
func NewCatwayRepository(pool *pgxpool.Pool) CatwayRepository {
	return &catwayRepository{pool: pool}
}

func (r *catwayRepository) GetAll(ctx context.Context) ([]domain.Catway, error) {
	const query = `SELECT id, catway_number, type, catway_state FROM catways ORDER BY catway_number`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catways []domain.Catway
	for rows.Next() {
		var catway domain.Catway
		if err := rows.Scan(&catway.ID, &catway.CatwayNumber, &catway.Type, &catway.CatwayState); err != nil {
			return nil, err
		}
		catways = append(catways, catway)
	}
	return catways, rows.Err()
}

func (r *catwayRepository) GetByID(ctx context.Context, id string) (*domain.Catway, error) {
	const query = `SELECT id, catway_number, type, catway_state FROM catways WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *catwayRepository) GetByNumber(ctx context.Context, number int) (*domain.Catway, error) {
	const query = `SELECT id, catway_number, type, catway_state FROM catways WHERE catway_number=$1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, number))
}

func (r *catwayRepository) GetFirst(ctx context.Context) (*domain.Catway, error) {
	const query = `SELECT id, catway_number, type, catway_state FROM catways ORDER BY catway_number LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query))
}

func (r *catwayRepository) scanOne(row pgx.Row) (*domain.Catway, error) {
	var catway domain.Catway
	if err := row.Scan(&catway.ID, &catway.CatwayNumber, &catway.Type, &catway.CatwayState); err != nil {
		return nil, err
	}
	return &catway, nil
}

func (r *catwayRepository) Create(ctx context.Context, catway *domain.Catway) error {
	const query = `
        INSERT INTO catways (catway_number, type, catway_state)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		catway.CatwayNumber,
		catway.Type,
		catway.CatwayState,
	).Scan(&catway.ID)
}

func (r *catwayRepository) Update(ctx context.Context, catway *domain.Catway) error {
	const query = `UPDATE catways SET catway_number=$1, type=$2, catway_state=$3 WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		catway.CatwayNumber,
		catway.Type,
		catway.CatwayState,
		catway.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes the catway. Deleting an absent id is not an error.
func (r *catwayRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM catways WHERE id=$1`

	_, err := r.pool.Exec(ctx, query, id)
	return err
}
