package assignments

import (
	"context"

	"github.com/google/uuid"

	"github.com/Spok95/studio-ops/internal/domain/errs"
	"github.com/Spok95/studio-ops/internal/domain/inventory"
)

type Store interface {
	Create(ctx context.Context, a Assignment) (*Assignment, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, projectID, itemID string) (bool, error)
	ListForProject(ctx context.Context, projectID string) ([]ProjectItem, error)
	ListAvailable(ctx context.Context, category, projectID string) ([]inventory.Item, error)
}

// ItemReader — только чтение предметов: координатор привязок статус не меняет.
type ItemReader interface {
	GetByID(ctx context.Context, id string) (*inventory.Item, error)
}

type Service struct {
	store Store
	items ItemReader
}

func NewService(store Store, items ItemReader) *Service {
	return &Service{store: store, items: items}
}

// Assign перепроверяет статус в момент вызова, а не в момент выбора кандидата:
// между AvailableCandidates и Assign предмет мог уйти в другой статус.
func (s *Service) Assign(ctx context.Context, projectID, itemID, notes string) (*Assignment, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &errs.NotFoundError{Entity: "inventory item", ID: itemID}
	}
	if it.Status != inventory.StatusAvailable {
		return nil, &errs.NotAvailableError{InventoryItemID: itemID, Status: string(it.Status)}
	}
	exists, err := s.store.Exists(ctx, projectID, itemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &errs.DuplicateAssignmentError{ProjectID: projectID, InventoryItemID: itemID}
	}
	// статус предмета намеренно не трогаем: общий пул оборудования,
	// один предмет может числиться в нескольких проектах
	return s.store.Create(ctx, Assignment{
		ID:              uuid.NewString(),
		ProjectID:       projectID,
		InventoryItemID: itemID,
		Notes:           notes,
	})
}

// Unassign удаляет привязку безусловно и статус предмета не восстанавливает.
func (s *Service) Unassign(ctx context.Context, assignmentID string) error {
	return s.store.Delete(ctx, assignmentID)
}

func (s *Service) ListForProject(ctx context.Context, projectID string) ([]ProjectItem, error) {
	return s.store.ListForProject(ctx, projectID)
}

func (s *Service) AvailableCandidates(ctx context.Context, category, projectID string) ([]inventory.Item, error) {
	return s.store.ListAvailable(ctx, category, projectID)
}
