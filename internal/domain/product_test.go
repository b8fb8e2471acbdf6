package domain

import (
	"errors"
	"testing"
)

func TestProductNormalize(t *testing.T) {
	p := Product{
		Name:        "Blue T-Shirt",
		Description: "Soft Cotton",
		Price:       19.99,
		Size:        "XL",
	}

	p.Normalize()

	if p.Name != "blue t-shirt" {
		t.Errorf("expected lowercase name, got %q", p.Name)
	}
	if p.Description != "soft cotton" {
		t.Errorf("expected lowercase description, got %q", p.Description)
	}
	if p.Size != "xl" {
		t.Errorf("expected lowercase size, got %q", p.Size)
	}
	if p.Price != 19.99 {
		t.Errorf("price must not change during normalization, got %v", p.Price)
	}
}

func TestProductValidateInvariants(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    []error
	}{
		{
			name:    "valid product",
			product: Product{Name: "hoodie", Price: 49.5},
			want:    nil,
		},
		{
			name:    "optional fields may be empty",
			product: Product{Name: "hoodie", Price: 0.01},
			want:    nil,
		},
		{
			name:    "missing name",
			product: Product{Price: 10},
			want:    []error{ErrNameRequired},
		},
		{
			name:    "zero price",
			product: Product{Name: "hoodie"},
			want:    []error{ErrPriceInvalid},
		},
		{
			name:    "negative price",
			product: Product{Name: "hoodie", Price: -5},
			want:    []error{ErrPriceInvalid},
		},
		{
			name:    "everything wrong",
			product: Product{},
			want:    []error{ErrNameRequired, ErrPriceInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.product.ValidateInvariants()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.want), len(got), got)
			}
			for i, want := range tt.want {
				if !errors.Is(got[i], want) {
					t.Errorf("error[%d] = %v, want %v", i, got[i], want)
				}
			}
		})
	}
}
