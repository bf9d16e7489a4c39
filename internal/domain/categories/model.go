package categories

import "time"

type Category struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

// Position — новая позиция категории при массовом пересортировании.
type Position struct {
	ID         string
	OrderIndex int
}
