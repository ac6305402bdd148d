// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/shopspring/decimal"
)

// DeliveryArea is a serviceable zone with its own delivery fee.
type DeliveryArea struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Pincodes              []string        `json:"pincodes"`
	DeliveryFee           decimal.Decimal `json:"delivery_fee"`
	FreeDeliveryThreshold decimal.Decimal `json:"free_delivery_threshold"` // Zero disables free delivery.
	CenterLatitude        float64         `json:"center_latitude,omitempty"`
	CenterLongitude       float64         `json:"center_longitude,omitempty"`
	RadiusKm              float64         `json:"radius_km,omitempty"`
	Boundary              [][2]float64    `json:"boundary,omitempty"` // Ring of [lng, lat] points.
	IsActive              bool            `json:"is_active"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// HasPincode reports whether pincode is listed for the area.
func (a *DeliveryArea) HasPincode(pincode string) bool {
	return pincode != "" && slices.Contains(a.Pincodes, pincode)
}

// ContainsPoint reports whether the point lies inside the boundary polygon or,
// failing that, within RadiusKm of the center.
func (a *DeliveryArea) ContainsPoint(lat, lng float64) bool {
	point := orb.Point{lng, lat}

	if len(a.Boundary) >= 3 {
		ring := make(orb.Ring, 0, len(a.Boundary)+1)
		for _, p := range a.Boundary {
			ring = append(ring, orb.Point{p[0], p[1]})
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		if planar.PolygonContains(orb.Polygon{ring}, point) {
			return true
		}
	}

	if a.RadiusKm > 0 {
		center := orb.Point{a.CenterLongitude, a.CenterLatitude}
		if geo.DistanceHaversine(center, point) <= a.RadiusKm*1000 {
			return true
		}
	}

	return false
}

// FeeFor returns the delivery fee for a given subtotal.
func (a *DeliveryArea) FeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if a.FreeDeliveryThreshold.IsPositive() && subtotal.GreaterThanOrEqual(a.FreeDeliveryThreshold) {
		return decimal.Zero
	}

	return a.DeliveryFee
}
