package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Condition is the health/status flag of a street-sighted cat.
type Condition string

const (
	ConditionNormal  Condition = "NORMAL"
	ConditionUrgent  Condition = "URGENT"
	ConditionAtVet   Condition = "AT VET"
	ConditionUnknown Condition = "UNKNOWN"
	ConditionAdopted Condition = "ADOPTED"
	ConditionPassed  Condition = "PASSED"
)

// Conditions lists every recognized condition value.
var Conditions = []Condition{
	ConditionNormal,
	ConditionUrgent,
	ConditionAtVet,
	ConditionUnknown,
	ConditionAdopted,
	ConditionPassed,
}

// IsValid reports whether c is one of the recognized conditions.
func (c Condition) IsValid() bool {
	return slices.Contains(Conditions, c)
}

// IsTerminal reports whether no other condition may follow c.
func (c Condition) IsTerminal() bool {
	return c == ConditionAdopted || c == ConditionPassed
}

// RequiresOwner reports whether only the cat's contributor may set c.
func (c Condition) RequiresOwner() bool {
	return c.IsTerminal()
}

// BlocksContribution reports whether community contributions are closed while a cat is in c.
func (c Condition) BlocksContribution() bool {
	return c == ConditionAtVet || c.IsTerminal()
}

// Display maps the uninitialized placeholder to NORMAL for read surfaces.
func (c Condition) Display() Condition {
	if c == "" || c == ConditionUnknown {
		return ConditionNormal
	}

	return c
}

// CanTransitionTo reports whether moving from c to next is allowed.
// Terminal conditions only accept themselves.
func (c Condition) CanTransitionTo(next Condition) bool {
	if !next.IsValid() {
		return false
	}
	if c.IsTerminal() {
		return c == next
	}

	return true
}

// CatLocation is a street-sighting pin for a cat. A cat has at most one pin.
type CatLocation struct {
	ID        uuid.UUID `json:"id"`
	CatID     uuid.UUID `json:"cat_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Condition Condition `json:"condition"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Point returns the pin as an orb point (lon, lat).
func (l *CatLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// PinView is a pin joined with the cat and contributor data shown on the map.
type PinView struct {
	CatLocation
	CatName            string     `json:"cat_name"`
	AddingUserID       *uuid.UUID `json:"adding_user_id,omitempty"`
	AddingUserUsername string     `json:"adding_user_username,omitempty"`
}

// ServiceArea is the bounding box pins must fall in.
type ServiceArea struct {
	bound orb.Bound
}

// NewServiceArea builds a service area from latitude and longitude limits.
func NewServiceArea(minLat, maxLat, minLon, maxLon float64) ServiceArea {
	return ServiceArea{
		bound: orb.Bound{
			Min: orb.Point{minLon, minLat},
			Max: orb.Point{maxLon, maxLat},
		},
	}
}

// DefaultServiceArea covers latitude 16..33 and longitude 34..56.
func DefaultServiceArea() ServiceArea {
	return NewServiceArea(16, 33, 34, 56)
}

// Contains reports whether the coordinate lies inside the area, edges included.
func (a ServiceArea) Contains(lat, lon float64) bool {
	return a.bound.Contains(orb.Point{lon, lat})
}

// Bound exposes the underlying orb bound.
func (a ServiceArea) Bound() orb.Bound {
	return a.bound
}
