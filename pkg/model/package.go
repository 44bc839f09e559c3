package model

import "time"

// Package is a holiday package in the public catalog. Price is a pointer
// so that a missing price and an explicit zero price validate differently.
type Package struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Destination string    `json:"destination" bson:"destination" validate:"required,min=2,max=100"`
	Duration    int       `json:"duration" bson:"duration" validate:"required,min=1"`
	Price       *float64  `json:"price" bson:"price" validate:"required,gte=0"`
	Description string    `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=5000"`
	Itinerary   []string  `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Inclusions  []string  `json:"inclusions,omitempty" bson:"inclusions,omitempty"`
	Exclusions  []string  `json:"exclusions,omitempty" bson:"exclusions,omitempty"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	Featured    bool      `json:"featured" bson:"featured"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// PackageUpdate is a partial patch; only supplied fields are re-validated
// and written.
type PackageUpdate struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Destination *string   `json:"destination,omitempty" validate:"omitempty,min=2,max=100"`
	Duration    *int      `json:"duration,omitempty" validate:"omitempty,min=1"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Itinerary   *[]string `json:"itinerary,omitempty"`
	Inclusions  *[]string `json:"inclusions,omitempty"`
	Exclusions  *[]string `json:"exclusions,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	Active      *bool     `json:"active,omitempty"`
}

// PackageFilter captures the public list filters.
type PackageFilter struct {
	Destination string
	MinPrice    *float64
	MaxPrice    *float64
	MinDuration *int
	MaxDuration *int
	Featured    *bool
}

// PackageSummary is the embedded view returned alongside inquiries that
// reference a package.
type PackageSummary struct {
	ID          string  `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Destination string  `json:"destination" bson:"destination"`
	Duration    int     `json:"duration" bson:"duration"`
	Price       float64 `json:"price" bson:"price"`
}

func (p *Package) Summary() *PackageSummary {
	price := 0.0
	if p.Price != nil {
		price = *p.Price
	}
	return &PackageSummary{
		ID:          p.ID,
		Name:        p.Name,
		Destination: p.Destination,
		Duration:    p.Duration,
		Price:       price,
	}
}
