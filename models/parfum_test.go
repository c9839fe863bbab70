package models

import "testing"

func TestParseCategory(t *testing.T) {
	for name, want := range map[string]Category{
		"male":   CategoryMale,
		"female": CategoryFemale,
		"unisex": CategoryUnisex,
	} {
		got, ok := ParseCategory(name)
		if !ok || got != want {
			t.Fatalf("ParseCategory(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseCategory("kids"); ok {
		t.Fatalf("unknown category names must not parse")
	}
}

func TestParseFragranceClass(t *testing.T) {
	got, ok := ParseFragranceClass("private_collection")
	if !ok || got != FragrancePrivateCollection {
		t.Fatalf("ParseFragranceClass(private_collection) = %v, %v", got, ok)
	}
	if _, ok := ParseFragranceClass("celebrity"); ok {
		t.Fatalf("unknown class names must not parse")
	}
}

func TestMinPrice(t *testing.T) {
	p := &Parfum{Variants: []Variant{
		{Size: "100ml", Price: 250},
		{Size: "50ml", Price: 140},
		{Size: "75ml", Price: 190},
	}}
	if got := p.MinPrice(); got != 140 {
		t.Fatalf("expected min price 140, got %v", got)
	}

	empty := &Parfum{}
	if got := empty.MinPrice(); got != 0 {
		t.Fatalf("expected 0 without variants, got %v", got)
	}
}
