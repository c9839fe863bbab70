package services

import (
	"context"
	"testing"

	"vitrine/models"
)

func validParfumInput() *ParfumInput {
	return &ParfumInput{
		Name:           "Aventus",
		Description:    "Pineapple and birch over smoky musk.",
		Category:       "male",
		FragranceClass: "niche",
		BrandID:        1,
		Variants: []VariantInput{
			{Size: "50ml", Price: 120},
			{Size: "100ml", Price: 210},
		},
	}
}

func catalogWithBrand() (*CatalogService, *fakeBrandRepo, *fakeParfumRepo) {
	brands := newFakeBrandRepo()
	brands.Create(context.Background(), &models.Brand{Name: "Creed"})
	parfums := newFakeParfumRepo()
	return NewCatalogService(brands, parfums), brands, parfums
}

func TestCreateParfum(t *testing.T) {
	svc, _, parfums := catalogWithBrand()

	parfum, svcErr := svc.CreateParfum(context.Background(), validParfumInput())
	if svcErr != nil {
		t.Fatalf("CreateParfum returned error: %+v", svcErr)
	}
	if parfum.ID == 0 {
		t.Fatalf("created parfum must have an id")
	}
	if len(parfums.parfums) != 1 {
		t.Fatalf("expected 1 persisted parfum")
	}
	if parfum.Category != models.CategoryMale || parfum.FragranceClass != models.FragranceNiche {
		t.Fatalf("enum names must map to codes, got %v/%v", parfum.Category, parfum.FragranceClass)
	}
	if !parfum.Available {
		t.Fatalf("availability must default to true")
	}
}

func TestCreateParfumValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ParfumInput)
		field  string
	}{
		{"blank name", func(in *ParfumInput) { in.Name = "  " }, "name"},
		{"short description", func(in *ParfumInput) { in.Description = "abc" }, "description"},
		{"missing brand", func(in *ParfumInput) { in.BrandID = 0 }, "brand_id"},
		{"unknown category", func(in *ParfumInput) { in.Category = "kids" }, "category"},
		{"unknown class", func(in *ParfumInput) { in.FragranceClass = "celebrity" }, "fragrance_class"},
		{"no variants", func(in *ParfumInput) { in.Variants = nil }, "variants"},
		{"zero price", func(in *ParfumInput) { in.Variants[0].Price = 0 }, "variants"},
		{"duplicate size", func(in *ParfumInput) { in.Variants[1].Size = "50ml" }, "variants"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, parfums := catalogWithBrand()
			in := validParfumInput()
			tc.mutate(in)

			_, svcErr := svc.CreateParfum(context.Background(), in)
			if svcErr == nil || svcErr.StatusCode != 422 {
				t.Fatalf("expected 422, got %+v", svcErr)
			}
			if _, ok := svcErr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q flagged, got %v", tc.field, svcErr.Fields)
			}
			if len(parfums.parfums) != 0 {
				t.Fatalf("nothing must be persisted on validation failure")
			}
		})
	}
}

func TestCreateParfumUnknownBrand(t *testing.T) {
	svc := NewCatalogService(newFakeBrandRepo(), newFakeParfumRepo())

	_, svcErr := svc.CreateParfum(context.Background(), validParfumInput())
	if svcErr == nil || svcErr.StatusCode != 422 {
		t.Fatalf("expected 422, got %+v", svcErr)
	}
	if _, ok := svcErr.Fields["brand_id"]; !ok {
		t.Fatalf("expected brand_id flagged, got %v", svcErr.Fields)
	}
}

func TestUpdateParfumReplacesVariants(t *testing.T) {
	svc, _, parfums := catalogWithBrand()

	created, svcErr := svc.CreateParfum(context.Background(), validParfumInput())
	if svcErr != nil {
		t.Fatalf("CreateParfum returned error: %+v", svcErr)
	}

	in := validParfumInput()
	in.Variants = []VariantInput{{Size: "30ml", Price: 85}}

	updated, svcErr := svc.UpdateParfum(context.Background(), created.ID, in)
	if svcErr != nil {
		t.Fatalf("UpdateParfum returned error: %+v", svcErr)
	}
	if len(updated.Variants) != 1 || updated.Variants[0].Size != "30ml" {
		t.Fatalf("variant set must be replaced, got %+v", updated.Variants)
	}
	if len(parfums.parfums[created.ID].Variants) != 1 {
		t.Fatalf("replacement must be persisted")
	}
}

func TestUpdateParfumFailedWriteLeavesNoPartialState(t *testing.T) {
	svc, _, parfums := catalogWithBrand()

	created, svcErr := svc.CreateParfum(context.Background(), validParfumInput())
	if svcErr != nil {
		t.Fatalf("CreateParfum returned error: %+v", svcErr)
	}

	parfums.failVariants = true
	in := validParfumInput()
	in.Name = "Aventus Cologne"
	in.Category = "unisex"
	in.Variants = []VariantInput{{Size: "30ml", Price: 85}}

	if _, svcErr := svc.UpdateParfum(context.Background(), created.ID, in); svcErr == nil || svcErr.StatusCode != 500 {
		t.Fatalf("expected 500, got %+v", svcErr)
	}

	stored := parfums.parfums[created.ID]
	if stored.Name != "Aventus" || stored.Category != models.CategoryMale {
		t.Fatalf("failed update must not change parfum fields, got %q/%v", stored.Name, stored.Category)
	}
	if len(stored.Variants) != 2 || stored.Variants[0].Size != "50ml" {
		t.Fatalf("failed update must not change variants, got %+v", stored.Variants)
	}
}

func TestDeleteBrandBlockedWhileReferenced(t *testing.T) {
	brands := newFakeBrandRepo()
	brands.Create(context.Background(), &models.Brand{Name: "Creed"})
	brands.parfumCounts[1] = 3
	svc := NewCatalogService(brands, newFakeParfumRepo())

	svcErr := svc.DeleteBrand(context.Background(), 1)
	if svcErr == nil || svcErr.StatusCode != 409 {
		t.Fatalf("expected 409, got %+v", svcErr)
	}
	if _, ok := brands.brands[1]; !ok {
		t.Fatalf("brand must survive a blocked delete")
	}

	brands.parfumCounts[1] = 0
	if svcErr := svc.DeleteBrand(context.Background(), 1); svcErr != nil {
		t.Fatalf("DeleteBrand returned error: %+v", svcErr)
	}
	if _, ok := brands.brands[1]; ok {
		t.Fatalf("brand must be gone once unreferenced")
	}
}

func TestCreateBrandRequiresName(t *testing.T) {
	svc, brands, _ := catalogWithBrand()

	_, svcErr := svc.CreateBrand(context.Background(), &BrandInput{Name: "   "})
	if svcErr == nil || svcErr.StatusCode != 422 {
		t.Fatalf("expected 422, got %+v", svcErr)
	}
	if len(brands.brands) != 1 {
		t.Fatalf("nothing must be persisted")
	}
}

func TestUpdateParfumImage(t *testing.T) {
	svc, _, parfums := catalogWithBrand()

	created, svcErr := svc.CreateParfum(context.Background(), validParfumInput())
	if svcErr != nil {
		t.Fatalf("CreateParfum returned error: %+v", svcErr)
	}

	updated, svcErr := svc.UpdateParfumImage(context.Background(), created.ID, "/img/aventus.jpg")
	if svcErr != nil {
		t.Fatalf("UpdateParfumImage returned error: %+v", svcErr)
	}
	if updated.ImageURL != "/img/aventus.jpg" {
		t.Fatalf("image url not applied: %q", updated.ImageURL)
	}
	if parfums.parfums[created.ID].ImageURL != "/img/aventus.jpg" {
		t.Fatalf("image url not persisted")
	}

	if _, svcErr := svc.UpdateParfumImage(context.Background(), created.ID, "  "); svcErr == nil || svcErr.StatusCode != 400 {
		t.Fatalf("expected 400 for blank image, got %+v", svcErr)
	}
}
