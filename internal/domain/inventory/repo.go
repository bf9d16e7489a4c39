package inventory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const itemColumns = `id, name, category, brand, model, serial_number, purchase_date, price, status, notes, created_at`

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Brand, &it.Model,
		&it.SerialNumber, &it.PurchaseDate, &it.Price, &it.Status, &it.Notes, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repo) Create(ctx context.Context, it Item) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO inventory (id, name, category, brand, model, serial_number, purchase_date, price, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING `+itemColumns+`
	`, it.ID, it.Name, it.Category, it.Brand, it.Model, it.SerialNumber, it.PurchaseDate, it.Price, string(it.Status), it.Notes)
	return scanItem(row)
}

func (r *Repo) Update(ctx context.Context, it Item) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE inventory SET
			name=$2, category=$3, brand=$4, model=$5, serial_number=$6,
			purchase_date=$7, price=$8, status=$9, notes=$10
		WHERE id=$1
		RETURNING `+itemColumns+`
	`, it.ID, it.Name, it.Category, it.Brand, it.Model, it.SerialNumber, it.PurchaseDate, it.Price, string(it.Status), it.Notes)
	return scanItem(row)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+` FROM inventory WHERE id = $1
	`, id)
	it, err := scanItem(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return it, err
}

func (r *Repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+` FROM inventory ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}
	return out, rows.Err()
}

// NamesByCategory — имена предметов, ссылающихся на категорию, и их общее
// количество. Используется при блокировке удаления категории.
func (r *Repo) NamesByCategory(ctx context.Context, category string, limit int) ([]string, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM inventory WHERE category = $1
	`, category).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT name FROM inventory WHERE category = $1 ORDER BY name LIMIT $2
	`, category, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, 0, err
		}
		names = append(names, n)
	}
	return names, total, rows.Err()
}
