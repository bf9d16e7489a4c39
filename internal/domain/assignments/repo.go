package assignments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/studio-ops/internal/domain/errs"
	"github.com/Spok95/studio-ops/internal/domain/inventory"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Create(ctx context.Context, a Assignment) (*Assignment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO project_inventory_items (id, project_id, inventory_item_id, notes)
		VALUES ($1,$2,$3,$4)
		RETURNING id, project_id, inventory_item_id, notes, created_at
	`, a.ID, a.ProjectID, a.InventoryItemID, a.Notes)
	var out Assignment
	if err := row.Scan(&out.ID, &out.ProjectID, &out.InventoryItemID, &out.Notes, &out.CreatedAt); err != nil {
		// подстраховка на случай гонки между Exists и Create:
		// уникальный индекс (project_id, inventory_item_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &errs.DuplicateAssignmentError{ProjectID: a.ProjectID, InventoryItemID: a.InventoryItemID}
		}
		return nil, err
	}
	return &out, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM project_inventory_items WHERE id = $1`, id)
	return err
}

func (r *Repo) Exists(ctx context.Context, projectID, itemID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM project_inventory_items
			WHERE project_id = $1 AND inventory_item_id = $2
		)
	`, projectID, itemID).Scan(&exists)
	return exists, err
}

func (r *Repo) ListForProject(ctx context.Context, projectID string) ([]ProjectItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.project_id, a.inventory_item_id, a.notes, a.created_at,
		       i.id, i.name, i.category, i.brand, i.model, i.serial_number,
		       i.purchase_date, i.price, i.status, i.notes, i.created_at
		FROM project_inventory_items a
		JOIN inventory i ON i.id = a.inventory_item_id
		WHERE a.project_id = $1
		ORDER BY a.created_at, a.id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ProjectItem
	for rows.Next() {
		var p ProjectItem
		if err := rows.Scan(
			&p.ID, &p.ProjectID, &p.InventoryItemID, &p.Notes, &p.CreatedAt,
			&p.Item.ID, &p.Item.Name, &p.Item.Category, &p.Item.Brand, &p.Item.Model,
			&p.Item.SerialNumber, &p.Item.PurchaseDate, &p.Item.Price, &p.Item.Status,
			&p.Item.Notes, &p.Item.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListAvailable — кандидаты на привязку: нужная категория, статус available,
// ещё не привязаны к этому проекту. Статус перепроверяется в момент Assign.
func (r *Repo) ListAvailable(ctx context.Context, category, projectID string) ([]inventory.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.name, i.category, i.brand, i.model, i.serial_number,
		       i.purchase_date, i.price, i.status, i.notes, i.created_at
		FROM inventory i
		WHERE i.category = $1 AND i.status = 'available'
		  AND NOT EXISTS (
			SELECT 1 FROM project_inventory_items a
			WHERE a.project_id = $2 AND a.inventory_item_id = i.id
		  )
		ORDER BY i.name, i.id
	`, category, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []inventory.Item
	for rows.Next() {
		var it inventory.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Brand, &it.Model,
			&it.SerialNumber, &it.PurchaseDate, &it.Price, &it.Status, &it.Notes, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
