// Package entity contains the core business objects of the project.
package entity

// Address is a delivery address. It is stored as JSON on users (saved addresses)
// and copied onto orders so later edits never change a placed order.
type Address struct {
	Label     string  `json:"label,omitempty" validate:"max=50"` // e.g. "Home", "Office".
	Name      string  `json:"name" validate:"required,max=100"`
	Phone     string  `json:"phone" validate:"required,min=7,max=20"`
	Line1     string  `json:"line1" validate:"required,max=255"`
	Line2     string  `json:"line2,omitempty" validate:"max=255"`
	Landmark  string  `json:"landmark,omitempty" validate:"max=255"`
	City      string  `json:"city" validate:"required,max=100"`
	State     string  `json:"state,omitempty" validate:"max=100"`
	Pincode   string  `json:"pincode" validate:"required,len=6,numeric"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the address carries a geocoded point.
func (a Address) HasCoordinates() bool {
	return a.Latitude != 0 || a.Longitude != 0
}
