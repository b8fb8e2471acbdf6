package memory_test

import (
	"fmt"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func newProduct(name, size string, price float64) domain.Product {
	return domain.Product{
		Name:  name,
		Price: price,
		Size:  size,
	}
}

func TestProductRepository_CreateAssignsID(t *testing.T) {
	repo := memory.NewProductRepository()

	created, err := repo.Create(newProduct("t-shirt", "m", 9.99))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if created.Name != "t-shirt" {
		t.Fatalf("expected name preserved, got %q", created.Name)
	}
}

func TestProductRepository_FindByIDs(t *testing.T) {
	repo := memory.NewProductRepository()

	p1, err := repo.Create(newProduct("t-shirt", "m", 9.99))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	p2, err := repo.Create(newProduct("hoodie", "l", 39.99))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByIDs([]string{p1.ID, p2.ID, p1.ID, "missing"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 products (one per distinct resolvable id), got %d", len(found))
	}
}

func TestProductRepository_FindByIDs_Empty(t *testing.T) {
	repo := memory.NewProductRepository()

	found, err := repo.FindByIDs(nil)
	if err != nil {
		t.Fatalf("empty lookup must not fail: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("expected empty result, got %d", len(found))
	}
}

func TestProductRepository_ListFilters(t *testing.T) {
	repo := memory.NewProductRepository()

	seed := []domain.Product{
		newProduct("blue t-shirt", "m", 9.99),
		newProduct("red t-shirt", "l", 10.99),
		newProduct("hoodie", "m", 39.99),
	}
	for _, p := range seed {
		if _, err := repo.Create(p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter domain.ProductFilter
		want   []string
	}{
		{
			name:   "no filter",
			filter: domain.ProductFilter{Limit: 10},
			want:   []string{"blue t-shirt", "red t-shirt", "hoodie"},
		},
		{
			name:   "name substring is case-insensitive",
			filter: domain.ProductFilter{Name: "T-Shirt", Limit: 10},
			want:   []string{"blue t-shirt", "red t-shirt"},
		},
		{
			name:   "size exact match",
			filter: domain.ProductFilter{Size: "m", Limit: 10},
			want:   []string{"blue t-shirt", "hoodie"},
		},
		{
			name:   "combined filters",
			filter: domain.ProductFilter{Name: "shirt", Size: "l", Limit: 10},
			want:   []string{"red t-shirt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(tt.filter)
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d products, got %d", len(tt.want), len(got))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("product[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestProductRepository_ListPagination(t *testing.T) {
	repo := memory.NewProductRepository()

	for i := 0; i < 15; i++ {
		if _, err := repo.Create(newProduct(fmt.Sprintf("product-%02d", i), "", 1)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	first, err := repo.List(domain.ProductFilter{Limit: 10, Offset: 0})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := repo.List(domain.ProductFilter{Limit: 10, Offset: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(first) != 10 {
		t.Fatalf("expected 10 products on first page, got %d", len(first))
	}
	if len(second) != 5 {
		t.Fatalf("expected 5 products on second page, got %d", len(second))
	}

	// Страницы не пересекаются, порядок по возрастанию ID стабилен.
	seen := make(map[string]struct{})
	prev := ""
	for _, p := range append(first, second...) {
		if _, dup := seen[p.ID]; dup {
			t.Fatalf("duplicate id across pages: %s", p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ID <= prev {
			t.Fatalf("ids must ascend: %s after %s", p.ID, prev)
		}
		prev = p.ID
	}

	tail, err := repo.List(domain.ProductFilter{Limit: 10, Offset: 100})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tail) != 0 {
		t.Fatalf("offset beyond dataset must return empty result, got %d", len(tail))
	}
}
