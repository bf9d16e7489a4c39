package inventory

import "time"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusRented      Status = "rented"
	StatusMaintenance Status = "maintenance"
	StatusLost        Status = "lost"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance, StatusLost:
		return true
	}
	return false
}

type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"` // имя категории, не id: переименование категории предметы не трогает
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	// ISO-дата YYYY-MM-DD, пустая строка — дата не задана.
	// Хранится строкой: сортировка по дате в представлении — строковая.
	PurchaseDate string    `json:"purchase_date,omitempty"`
	Price        float64   `json:"price"`
	Status       Status    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Patch — частичное обновление: nil-поля не трогаем.
type Patch struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Brand        *string  `json:"brand"`
	Model        *string  `json:"model"`
	SerialNumber *string  `json:"serial_number"`
	PurchaseDate *string  `json:"purchase_date"`
	Price        *float64 `json:"price"`
	Status       *Status  `json:"status"`
	Notes        *string  `json:"notes"`
}
