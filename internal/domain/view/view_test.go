package view

import (
	"reflect"
	"testing"

	"github.com/Spok95/studio-ops/internal/domain/categories"
	"github.com/Spok95/studio-ops/internal/domain/inventory"
)

func cat(id, name string, idx int) categories.Category {
	return categories.Category{ID: id, Name: name, OrderIndex: idx}
}

func groupNames(v View) []string {
	out := make([]string, 0, len(v.Groups))
	for _, g := range v.Groups {
		out = append(out, g.Category)
	}
	return out
}

func itemNames(g Group) []string {
	out := make([]string, 0, len(g.Items))
	for _, it := range g.Items {
		out = append(out, it.Name)
	}
	return out
}

func TestBuildGroupsAndUncategorized(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 0), cat("b", "B", 1)}
	items := []inventory.Item{
		{ID: "x", Name: "x", Category: "A", Price: 10},
		{ID: "y", Name: "y", Category: "B", Price: 5},
		{ID: "z", Name: "z", Category: "C", Price: 1},
	}

	v := Build(cats, items, Params{CategoryFilter: FilterAll, SortKey: SortPriceAsc})

	want := []string{"A", "B", UncategorizedLabel}
	if got := groupNames(v); !reflect.DeepEqual(got, want) {
		t.Fatalf("group order = %v, want %v", got, want)
	}
	if got := itemNames(v.Groups[0]); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("group A = %v, want [x]", got)
	}
	if got := itemNames(v.Groups[1]); !reflect.DeepEqual(got, []string{"y"}) {
		t.Errorf("group B = %v, want [y]", got)
	}
	if got := itemNames(v.Groups[2]); !reflect.DeepEqual(got, []string{"z"}) {
		t.Errorf("group Uncategorized = %v, want [z]", got)
	}
}

func TestBuildFollowsOrderIndex(t *testing.T) {
	// после reorder([B, A]) группы идут B, A, Uncategorized
	cats := []categories.Category{cat("a", "A", 1), cat("b", "B", 0)}
	items := []inventory.Item{
		{ID: "x", Name: "x", Category: "A", Price: 10},
		{ID: "y", Name: "y", Category: "B", Price: 5},
		{ID: "z", Name: "z", Category: "C", Price: 1},
	}

	v := Build(cats, items, Params{CategoryFilter: FilterAll, SortKey: SortPriceAsc})

	want := []string{"B", "A", UncategorizedLabel}
	if got := groupNames(v); !reflect.DeepEqual(got, want) {
		t.Fatalf("group order = %v, want %v", got, want)
	}
}

func TestBuildPrunesEmptyGroups(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 0), cat("b", "B", 1), cat("c", "C", 2)}
	items := []inventory.Item{
		{ID: "x", Name: "x", Category: "A"},
		{ID: "z", Name: "z", Category: "C"},
	}

	v := Build(cats, items, Params{CategoryFilter: FilterAll, SortKey: SortName})

	want := []string{"A", "C"}
	if got := groupNames(v); !reflect.DeepEqual(got, want) {
		t.Fatalf("group order = %v, want %v", got, want)
	}
}

func TestBuildCategoryFilter(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 0), cat("b", "B", 1)}
	items := []inventory.Item{
		{ID: "x", Name: "x", Category: "A"},
		{ID: "y", Name: "y", Category: "B"},
	}

	v := Build(cats, items, Params{CategoryFilter: "B", SortKey: SortName})

	if got := groupNames(v); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("group order = %v, want [B]", got)
	}
}

func TestBuildSearchMatchesNameBrandCategory(t *testing.T) {
	cats := []categories.Category{cat("a", "Audio", 0), cat("b", "Video", 1)}
	items := []inventory.Item{
		{ID: "1", Name: "Shure SM58", Brand: "Shure", Category: "Audio"},
		{ID: "2", Name: "Camera", Brand: "Sony", Category: "Video"},
		{ID: "3", Name: "Mixer", Brand: "Behringer", Category: "Audio"},
	}

	// по имени, без учёта регистра
	v := Build(cats, items, Params{SearchTerm: "sm58", CategoryFilter: FilterAll, SortKey: SortName})
	if len(v.Groups) != 1 || len(v.Groups[0].Items) != 1 || v.Groups[0].Items[0].ID != "1" {
		t.Fatalf("search by name: %+v", v)
	}

	// по бренду
	v = Build(cats, items, Params{SearchTerm: "SONY", CategoryFilter: FilterAll, SortKey: SortName})
	if len(v.Groups) != 1 || v.Groups[0].Items[0].ID != "2" {
		t.Fatalf("search by brand: %+v", v)
	}

	// по категории
	v = Build(cats, items, Params{SearchTerm: "audio", CategoryFilter: FilterAll, SortKey: SortName})
	if len(v.Groups) != 1 || len(v.Groups[0].Items) != 2 {
		t.Fatalf("search by category: %+v", v)
	}
}

func TestBuildSortKeys(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 0)}
	items := []inventory.Item{
		{ID: "1", Name: "b", Category: "A", Price: 30, PurchaseDate: "2024-05-01"},
		{ID: "2", Name: "a", Category: "A", Price: 10, PurchaseDate: ""},
		{ID: "3", Name: "c", Category: "A", Price: 20, PurchaseDate: "2023-12-31"},
	}

	check := func(key SortKey, want []string) {
		t.Helper()
		v := Build(cats, items, Params{CategoryFilter: FilterAll, SortKey: key})
		got := make([]string, 0, 3)
		for _, it := range v.Groups[0].Items {
			got = append(got, it.ID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("sort %s = %v, want %v", key, got, want)
		}
	}

	check(SortName, []string{"2", "1", "3"})
	check(SortPriceAsc, []string{"2", "3", "1"})
	check(SortPriceDesc, []string{"1", "3", "2"})
	// пустая дата — минимальная строка
	check(SortDateAsc, []string{"2", "3", "1"})
	check(SortDateDesc, []string{"1", "3", "2"})
}

func TestBuildStableOnEqualKeys(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 0)}
	items := []inventory.Item{
		{ID: "1", Name: "first", Category: "A", Price: 10},
		{ID: "2", Name: "second", Category: "A", Price: 10},
		{ID: "3", Name: "third", Category: "A", Price: 10},
	}

	v := Build(cats, items, Params{CategoryFilter: FilterAll, SortKey: SortPriceAsc})

	got := itemNames(v.Groups[0])
	if !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Fatalf("equal keys must keep input order, got %v", got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 0), cat("b", "B", 1)}
	items := []inventory.Item{
		{ID: "1", Name: "x", Category: "A", Price: 10},
		{ID: "2", Name: "y", Category: "B", Price: 5},
		{ID: "3", Name: "z", Category: "C", Price: 1},
	}
	p := Params{CategoryFilter: FilterAll, SortKey: SortPriceAsc}

	first := Build(cats, items, p)
	second := Build(cats, items, p)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different views")
	}

	// при различающихся ключах сортировки перестановка входа результат не меняет
	permuted := []inventory.Item{items[2], items[0], items[1]}
	third := Build(cats, permuted, p)
	if !reflect.DeepEqual(first, third) {
		t.Fatalf("permuted input changed the view")
	}
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	cats := []categories.Category{cat("a", "A", 1), cat("b", "B", 0)}
	items := []inventory.Item{
		{ID: "1", Name: "b", Category: "A", Price: 2},
		{ID: "2", Name: "a", Category: "B", Price: 1},
	}
	catsCopy := []categories.Category{cat("a", "A", 1), cat("b", "B", 0)}

	Build(cats, items, Params{CategoryFilter: FilterAll, SortKey: SortName})

	if !reflect.DeepEqual(cats, catsCopy) {
		t.Errorf("categories input mutated: %+v", cats)
	}
}

func TestSortKeyValid(t *testing.T) {
	for _, k := range []SortKey{SortName, SortPriceAsc, SortPriceDesc, SortDateAsc, SortDateDesc} {
		if !k.Valid() {
			t.Errorf("%s must be valid", k)
		}
	}
	if SortKey("price").Valid() {
		t.Error("unknown key must be invalid")
	}
}
