package models

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ServiceEntry represents one emergency-service provider in the directory.
// Entries are static seed data, loaded once at startup and never mutated.
type ServiceEntry struct {
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Location *Location `json:"location,omitempty"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	// AlwaysAvailable marks phone-only services reachable from anywhere
	// (hotlines, dispatch ambulances). They bypass distance ranking.
	AlwaysAvailable bool `json:"always_available,omitempty"`
}

// RankedService is a ServiceEntry annotated with the ranking inputs computed
// for one specific query.
type RankedService struct {
	ServiceEntry
	// Distance is the display form: "420m", "3.2km", "Available 24/7".
	Distance string `json:"distance"`
	// Relevance is the textual-match weight in [0,1].
	Relevance float64 `json:"relevance"`
}
