package errs

import (
	"fmt"
	"strings"
)

// ValidationError — некорректный ввод; проверяется до похода в базу.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

func Validation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError — сущность с таким id не найдена.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %s not found", e.Entity, e.ID) }

// ConflictError — нарушена уникальность (например, имя категории уже занято).
type ConflictError struct {
	Entity string
	Name   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Name)
}

// ReferentialConflictError — удаление заблокировано зависимыми записями.
// ItemNames — первые несколько имён для показа пользователю, Total — сколько всего.
type ReferentialConflictError struct {
	Category  string
	ItemNames []string
	Total     int
}

func (e *ReferentialConflictError) Error() string {
	return fmt.Sprintf("category %q is referenced by %d inventory item(s): %s",
		e.Category, e.Total, strings.Join(e.ItemNames, ", "))
}

// DuplicateAssignmentError — предмет уже привязан к этому проекту.
type DuplicateAssignmentError struct {
	ProjectID       string
	InventoryItemID string
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("item %s is already assigned to project %s", e.InventoryItemID, e.ProjectID)
}

// NotAvailableError — попытка привязать предмет не в статусе available.
type NotAvailableError struct {
	InventoryItemID string
	Status          string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("item %s is not available (status %q)", e.InventoryItemID, e.Status)
}
