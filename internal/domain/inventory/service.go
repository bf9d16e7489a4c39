package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Spok95/studio-ops/internal/domain/errs"
)

type Store interface {
	Create(ctx context.Context, it Item) (*Item, error)
	Update(ctx context.Context, it Item) (*Item, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

type CreateInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	SerialNumber string  `json:"serial_number"`
	PurchaseDate string  `json:"purchase_date"`
	Price        float64 `json:"price"`
	Status       Status  `json:"status"`
	Notes        string  `json:"notes"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Item, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, errs.Validation("item name is empty")
	}
	if in.Price < 0 {
		return nil, errs.Validation("price must be >= 0, got %v", in.Price)
	}
	if in.Status == "" {
		in.Status = StatusAvailable
	}
	if !in.Status.Valid() {
		return nil, errs.Validation("unknown status %q", in.Status)
	}
	return s.store.Create(ctx, Item{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Category:     in.Category,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		PurchaseDate: in.PurchaseDate,
		Price:        in.Price,
		Status:       in.Status,
		Notes:        in.Notes,
	})
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (*Item, error) {
	it, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &errs.NotFoundError{Entity: "inventory item", ID: id}
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, errs.Validation("item name is empty")
		}
		it.Name = name
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Brand != nil {
		it.Brand = *p.Brand
	}
	if p.Model != nil {
		it.Model = *p.Model
	}
	if p.SerialNumber != nil {
		it.SerialNumber = *p.SerialNumber
	}
	if p.PurchaseDate != nil {
		it.PurchaseDate = *p.PurchaseDate
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, errs.Validation("price must be >= 0, got %v", *p.Price)
		}
		it.Price = *p.Price
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, errs.Validation("unknown status %q", *p.Status)
		}
		it.Status = *p.Status
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	return s.store.Update(ctx, *it)
}

// Delete безусловен: привязки к проектам не проверяются.
func (s *Service) Delete(ctx context.Context, id string) error {
	it, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return &errs.NotFoundError{Entity: "inventory item", ID: id}
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	it, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &errs.NotFoundError{Entity: "inventory item", ID: id}
	}
	return it, nil
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.store.List(ctx)
}
