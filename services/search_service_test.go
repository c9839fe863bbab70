package services

import (
	"context"
	"testing"
)

func TestSearchShortQueryReturnsEmptyWithoutQuerying(t *testing.T) {
	parfums := newFakeParfumRepo()
	brands := newFakeBrandRepo()
	orders := newFakeOrderRepo()
	svc := NewSearchService(parfums, brands, orders)

	for _, q := range []string{"", " ", "a", " a ", "é"} {
		result, svcErr := svc.Public(context.Background(), q)
		if svcErr != nil {
			t.Fatalf("Public(%q) returned error: %v", q, svcErr)
		}
		if len(result.Perfumes) != 0 || len(result.Brands) != 0 {
			t.Fatalf("Public(%q) must be empty", q)
		}
	}

	if parfums.searchQuery != "" || brands.searchQuery != "" {
		t.Fatalf("repositories must not be queried for short queries")
	}
}

func TestSearchNormalizesQuery(t *testing.T) {
	parfums := newFakeParfumRepo()
	brands := newFakeBrandRepo()
	svc := NewSearchService(parfums, brands, newFakeOrderRepo())

	if _, svcErr := svc.Public(context.Background(), "  AvEn  "); svcErr != nil {
		t.Fatalf("Public returned error: %v", svcErr)
	}
	if parfums.searchQuery != "aven" {
		t.Fatalf("expected lowercased trimmed query, got %q", parfums.searchQuery)
	}
}

func TestSearchAppliesPerCategoryCaps(t *testing.T) {
	parfums := newFakeParfumRepo()
	brands := newFakeBrandRepo()
	orders := newFakeOrderRepo()
	svc := NewSearchService(parfums, brands, orders)

	if _, svcErr := svc.Admin(context.Background(), "chanel"); svcErr != nil {
		t.Fatalf("Admin returned error: %v", svcErr)
	}

	if parfums.searchLimit != SearchParfumsLimit {
		t.Fatalf("expected parfum cap %d, got %d", SearchParfumsLimit, parfums.searchLimit)
	}
	if brands.searchLimit != SearchBrandsLimit {
		t.Fatalf("expected brand cap %d, got %d", SearchBrandsLimit, brands.searchLimit)
	}
	if orders.searchLimit != SearchOrdersLimit {
		t.Fatalf("expected order cap %d, got %d", SearchOrdersLimit, orders.searchLimit)
	}
}

func TestAdminSearchEchoesQueryAndTotal(t *testing.T) {
	svc := NewSearchService(newFakeParfumRepo(), newFakeBrandRepo(), newFakeOrderRepo())

	result, svcErr := svc.Admin(context.Background(), "  Dior ")
	if svcErr != nil {
		t.Fatalf("Admin returned error: %v", svcErr)
	}
	if result.Query != "dior" {
		t.Fatalf("expected normalized query echoed, got %q", result.Query)
	}
	if result.Total != 0 {
		t.Fatalf("expected total 0, got %d", result.Total)
	}

	short, svcErr := svc.Admin(context.Background(), "x")
	if svcErr != nil {
		t.Fatalf("Admin returned error: %v", svcErr)
	}
	if short.Total != 0 || short.Query != "" || short.Orders == nil {
		t.Fatalf("short query must yield an empty, non-nil result: %+v", short)
	}
}
