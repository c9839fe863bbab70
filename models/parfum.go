package models

import "time"

// Category is the target audience of a perfume, stored as an integer code.
type Category int

const (
	CategoryMale Category = iota
	CategoryFemale
	CategoryUnisex
)

var categoryNames = map[Category]string{
	CategoryMale:   "male",
	CategoryFemale: "female",
	CategoryUnisex: "unisex",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unisex"
}

// ParseCategory maps a category name to its code; ok is false for unknown names.
func ParseCategory(name string) (Category, bool) {
	for code, n := range categoryNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// FragranceClass distinguishes designer, niche and private-collection perfumes.
type FragranceClass int

const (
	FragranceDesigner FragranceClass = iota
	FragranceNiche
	FragrancePrivateCollection
)

var fragranceClassNames = map[FragranceClass]string{
	FragranceDesigner:          "designer",
	FragranceNiche:             "niche",
	FragrancePrivateCollection: "private_collection",
}

func (f FragranceClass) String() string {
	if name, ok := fragranceClassNames[f]; ok {
		return name
	}
	return "designer"
}

func ParseFragranceClass(name string) (FragranceClass, bool) {
	for code, n := range fragranceClassNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

type Parfum struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"not null;index" json:"name"`
	Description    string         `gorm:"not null" json:"description"`
	Category       Category       `gorm:"not null;default:0" json:"-"`
	FragranceClass FragranceClass `gorm:"not null;default:0" json:"-"`
	Available      bool           `gorm:"not null;default:true" json:"available"`
	ImageURL       string         `json:"image_url,omitempty"`
	BrandID        uint           `gorm:"not null;index" json:"brand_id"`
	Brand          *Brand         `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Variants       []Variant      `gorm:"foreignKey:ParfumID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// MinPrice returns the cheapest variant price, 0 when no variants are loaded.
func (p *Parfum) MinPrice() float64 {
	var min float64
	for i, v := range p.Variants {
		if i == 0 || v.Price < min {
			min = v.Price
		}
	}
	return min
}

type Variant struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ParfumID uint    `gorm:"not null;index;uniqueIndex:idx_variants_parfum_size" json:"parfum_id"`
	Size     string  `gorm:"not null;uniqueIndex:idx_variants_parfum_size" json:"size"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
