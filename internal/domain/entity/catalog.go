// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups cakes on the storefront (e.g. "Birthday", "Photo Cakes").
type Category struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty"`
	DisplayOrder int        `json:"display_order"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WeightOption is one purchasable size of a cake with its own price.
type WeightOption struct {
	Weight string          `json:"weight" validate:"required"` // e.g. "500g", "1kg".
	Price  decimal.Decimal `json:"price"`
}

// Cake is the sellable product.
type Cake struct {
	ID            uuid.UUID       `json:"id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	BasePrice     decimal.Decimal `json:"base_price"`
	WeightOptions []WeightOption  `json:"weight_options"`
	Flavors       []string        `json:"flavors"`
	Images        []string        `json:"images"`
	Tags          []string        `json:"tags"`
	IsEggless     bool            `json:"is_eggless"`
	IsBestseller  bool            `json:"is_bestseller"`
	IsAvailable   bool            `json:"is_available"`
	AverageRating float64         `json:"average_rating"`
	ReviewCount   int             `json:"review_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PriceFor returns the unit price for the given weight. An empty weight selects the
// base price. ok is false when the cake has weight options and none match.
func (c *Cake) PriceFor(weight string) (price decimal.Decimal, ok bool) {
	weight = strings.TrimSpace(weight)
	if weight == "" {
		return c.BasePrice, true
	}

	for _, opt := range c.WeightOptions {
		if strings.EqualFold(opt.Weight, weight) {
			return opt.Price, true
		}
	}

	if len(c.WeightOptions) == 0 {
		return c.BasePrice, true
	}

	return decimal.Zero, false
}

// HasFlavor reports whether flavor is offered. Cakes without a flavor list accept any flavor.
func (c *Cake) HasFlavor(flavor string) bool {
	if flavor == "" || len(c.Flavors) == 0 {
		return true
	}

	for _, f := range c.Flavors {
		if strings.EqualFold(f, flavor) {
			return true
		}
	}

	return false
}

// Addon is an extra sold alongside cakes (candles, cards, flowers).
type Addon struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Slugify turns a display name into a URL slug: lowercase ASCII letters and digits
// separated by single dashes.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := true
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			lastDash = false

			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
