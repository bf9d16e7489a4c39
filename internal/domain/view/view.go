// Package view строит сгруппированное представление инвентаря: чистая
// функция без состояния, после любой мутации вызывающий строит его заново.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Spok95/studio-ops/internal/domain/categories"
	"github.com/Spok95/studio-ops/internal/domain/inventory"
)

const (
	// FilterAll отключает фильтр по категории.
	FilterAll = "All"
	// UncategorizedLabel — хвостовая группа для предметов, чья категория
	// больше не существует. Такие предметы не удаляются.
	UncategorizedLabel = "Uncategorized"
)

type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortDateAsc   SortKey = "date_asc"
	SortDateDesc  SortKey = "date_desc"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortName, SortPriceAsc, SortPriceDesc, SortDateAsc, SortDateDesc:
		return true
	}
	return false
}

type Params struct {
	SearchTerm     string
	CategoryFilter string
	SortKey        SortKey
}

type Group struct {
	Category string           `json:"category"`
	Items    []inventory.Item `json:"items"`
}

type View struct {
	Groups []Group `json:"groups"`
}

// Build: фильтр -> сортировка -> группировка по порядку категорий -> отсечение
// пустых групп. Входные срезы не изменяются.
func Build(cats []categories.Category, items []inventory.Item, p Params) View {
	filtered := filter(items, p)
	sortItems(filtered, p.SortKey)

	ordered := make([]categories.Category, len(cats))
	copy(ordered, cats)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].OrderIndex != ordered[j].OrderIndex {
			return ordered[i].OrderIndex < ordered[j].OrderIndex
		}
		return ordered[i].ID < ordered[j].ID
	})

	buckets := make(map[string][]inventory.Item)
	for _, it := range filtered {
		buckets[it.Category] = append(buckets[it.Category], it)
	}

	var groups []Group
	known := make(map[string]bool, len(ordered))
	for _, c := range ordered {
		known[c.Name] = true
		if b := buckets[c.Name]; len(b) > 0 {
			groups = append(groups, Group{Category: c.Name, Items: b})
		}
	}

	// осиротевшие предметы — в хвост, с сохранением отсортированного порядка
	var stray []inventory.Item
	for _, it := range filtered {
		if !known[it.Category] {
			stray = append(stray, it)
		}
	}
	if len(stray) > 0 {
		groups = append(groups, Group{Category: UncategorizedLabel, Items: stray})
	}

	return View{Groups: groups}
}

func filter(items []inventory.Item, p Params) []inventory.Item {
	term := strings.ToLower(strings.TrimSpace(p.SearchTerm))
	out := make([]inventory.Item, 0, len(items))
	for _, it := range items {
		if p.CategoryFilter != "" && p.CategoryFilter != FilterAll && it.Category != p.CategoryFilter {
			continue
		}
		if term != "" && !matches(it, term) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matches(it inventory.Item, term string) bool {
	return strings.Contains(strings.ToLower(it.Name), term) ||
		strings.Contains(strings.ToLower(it.Brand), term) ||
		strings.Contains(strings.ToLower(it.Category), term)
}

// Сортировка стабильная: при равных ключах сохраняется исходный порядок.
// Даты сравниваются как строки (ISO YYYY-MM-DD), пустая дата — минимальна.
func sortItems(items []inventory.Item, key SortKey) {
	var less func(a, b inventory.Item) bool
	switch key {
	case SortName:
		col := collate.New(language.Und)
		less = func(a, b inventory.Item) bool { return col.CompareString(a.Name, b.Name) < 0 }
	case SortPriceAsc:
		less = func(a, b inventory.Item) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b inventory.Item) bool { return a.Price > b.Price }
	case SortDateAsc:
		less = func(a, b inventory.Item) bool { return a.PurchaseDate < b.PurchaseDate }
	case SortDateDesc:
		less = func(a, b inventory.Item) bool { return a.PurchaseDate > b.PurchaseDate }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
