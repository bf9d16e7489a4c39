package categories

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Spok95/studio-ops/internal/domain/errs"
)

// Store — хранилище категорий (реализация — Repo поверх pgx).
type Store interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, c Category) (*Category, error)
	Rename(ctx context.Context, id, name string) (*Category, error)
	Delete(ctx context.Context, id string) error
	UpdatePositions(ctx context.Context, positions []Position) error
}

// ItemRefs отвечает на вопрос «кто ещё ссылается на категорию по имени».
// Реализуется инвентарным репозиторием.
type ItemRefs interface {
	NamesByCategory(ctx context.Context, category string, limit int) (names []string, total int, err error)
}

type Service struct {
	store Store
	items ItemRefs
}

func NewService(store Store, items ItemRefs) *Service {
	return &Service{store: store, items: items}
}

// наглядного списка в ошибке достаточно — полный перечень никому не нужен
const blockingNamesLimit = 5

func (s *Service) Create(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Validation("category name is empty")
	}
	existing, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &errs.ConflictError{Entity: "category", Name: name}
	}

	cats, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	next := 0
	for _, c := range cats {
		if c.OrderIndex >= next {
			next = c.OrderIndex + 1
		}
	}
	return s.store.Create(ctx, Category{ID: uuid.NewString(), Name: name, OrderIndex: next})
}

func (s *Service) Rename(ctx context.Context, id, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Validation("category name is empty")
	}
	cat, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, &errs.NotFoundError{Entity: "category", ID: id}
	}
	existing, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, &errs.ConflictError{Entity: "category", Name: name}
	}
	// order_index при переименовании не трогаем
	return s.store.Rename(ctx, id, name)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	cat, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return &errs.NotFoundError{Entity: "category", ID: id}
	}
	names, total, err := s.items.NamesByCategory(ctx, cat.Name, blockingNamesLimit)
	if err != nil {
		return err
	}
	if total > 0 {
		return &errs.ReferentialConflictError{Category: cat.Name, ItemNames: names, Total: total}
	}
	return s.store.Delete(ctx, id)
}

// Reorder принимает полный набор id в желаемом порядке и перенумеровывает
// order_index в 0..n-1. Набор обязан быть перестановкой текущего.
func (s *Service) Reorder(ctx context.Context, orderedIDs []string) ([]Category, error) {
	cats, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	if len(orderedIDs) != len(cats) {
		return nil, errs.Validation("reorder needs all %d category ids, got %d", len(cats), len(orderedIDs))
	}
	seen := make(map[string]bool, len(orderedIDs))
	positions := make([]Position, 0, len(orderedIDs))
	out := make([]Category, 0, len(orderedIDs))
	for i, id := range orderedIDs {
		if seen[id] {
			return nil, errs.Validation("duplicate category id %s in reorder", id)
		}
		seen[id] = true
		c, ok := byID[id]
		if !ok {
			return nil, errs.Validation("unknown category id %s in reorder", id)
		}
		positions = append(positions, Position{ID: id, OrderIndex: i})
		c.OrderIndex = i
		out = append(out, c)
	}
	if err := s.store.UpdatePositions(ctx, positions); err != nil {
		return nil, err
	}
	return out, nil
}

// List возвращает категории по порядку и чинит индексы, если конкурентные
// записи оставили дубликаты или дыры: перенумеровка по (order_index, id).
func (s *Service) List(ctx context.Context) ([]Category, error) {
	cats, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if !needsRenumber(cats) {
		return cats, nil
	}
	positions := make([]Position, len(cats))
	for i := range cats {
		positions[i] = Position{ID: cats[i].ID, OrderIndex: i}
		cats[i].OrderIndex = i
	}
	if err := s.store.UpdatePositions(ctx, positions); err != nil {
		return nil, err
	}
	return cats, nil
}

// cats уже отсортированы по (order_index, id), поэтому достаточно
// сверить индекс с позицией.
func needsRenumber(cats []Category) bool {
	for i, c := range cats {
		if c.OrderIndex != i {
			return true
		}
	}
	return false
}
