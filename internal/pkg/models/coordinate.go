package models

// Coordinate represents a resolved geographic point. It is immutable once
// created; each entity referencing a coordinate owns its own copy.
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Address   string  `json:"address,omitempty" db:"address"`
	Locality  string  `json:"locality,omitempty" db:"locality"`
	Country   string  `json:"country,omitempty" db:"country"`
}

// ResolveResult is the payload returned by the external address resolver.
type ResolveResult struct {
	Coordinate Coordinate `json:"coordinate"`
	Locality   string     `json:"locality"`
	PlaceRef   string     `json:"place_ref"`
}
