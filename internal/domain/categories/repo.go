package categories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, order_index, created_at
		FROM categories
		ORDER BY order_index, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.OrderIndex, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Category, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, order_index, created_at
		FROM categories WHERE id = $1
	`, id)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.OrderIndex, &c.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) GetByName(ctx context.Context, name string) (*Category, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, order_index, created_at
		FROM categories WHERE name = $1
	`, name)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.OrderIndex, &c.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) Create(ctx context.Context, c Category) (*Category, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, order_index)
		VALUES ($1, $2, $3)
		RETURNING id, name, order_index, created_at
	`, c.ID, c.Name, c.OrderIndex)
	var out Category
	if err := row.Scan(&out.ID, &out.Name, &out.OrderIndex, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) Rename(ctx context.Context, id, name string) (*Category, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE categories SET name=$2 WHERE id=$1
		RETURNING id, name, order_index, created_at
	`, id, name)
	var c Category
	if err := row.Scan(&c.ID, &c.Name, &c.OrderIndex, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

// UpdatePositions применяет новые order_index одной транзакцией:
// либо все позиции, либо ни одной (частичное применение даст дубликаты индексов).
func (r *Repo) UpdatePositions(ctx context.Context, positions []Position) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, p := range positions {
		if _, err := tx.Exec(ctx, `
			UPDATE categories SET order_index=$2 WHERE id=$1
		`, p.ID, p.OrderIndex); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
