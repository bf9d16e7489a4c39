package assignments

import (
	"time"

	"github.com/Spok95/studio-ops/internal/domain/inventory"
)

type Assignment struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	InventoryItemID string    `json:"inventory_item_id"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProjectItem — привязка вместе с карточкой предмета для отображения.
type ProjectItem struct {
	Assignment
	Item inventory.Item `json:"item"`
}
