// Package directory holds the static emergency-services catalog. The catalog
// is reference data: loaded once at startup from an embedded seed document and
// immutable for the process lifetime.
package directory

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/trusttrack/assist/internal/models"
)

//go:embed seed.json
var seedData []byte

type region struct {
	DefaultLocation models.Location       `json:"default_location"`
	Services        []models.ServiceEntry `json:"services"`
}

type seed struct {
	DefaultRegion string              `json:"default_region"`
	Regions       map[string]region   `json:"regions"`
	Hotline       models.ServiceEntry `json:"hotline"`
}

// Directory is the read-only catalog of emergency-service entries grouped by
// region. Adding a region is a seed-data change; the public contract does not
// move.
type Directory struct {
	defaultRegion string
	regions       map[string]region
	hotline       models.ServiceEntry
	// byCategory preserves seed insertion order within each category,
	// which ranking uses as the stable tie-break.
	byCategory map[models.Category][]models.ServiceEntry
	all        []models.ServiceEntry
}

// Load parses the embedded seed document into an immutable Directory.
func Load() (*Directory, error) {
	var s seed
	if err := json.Unmarshal(seedData, &s); err != nil {
		return nil, fmt.Errorf("parse directory seed: %w", err)
	}
	if _, ok := s.Regions[s.DefaultRegion]; !ok {
		return nil, fmt.Errorf("directory seed: default region %q not defined", s.DefaultRegion)
	}

	d := &Directory{
		defaultRegion: s.DefaultRegion,
		regions:       s.Regions,
		hotline:       s.Hotline,
		byCategory:    make(map[models.Category][]models.ServiceEntry),
	}
	for _, entry := range s.Regions[s.DefaultRegion].Services {
		if _, ok := models.ParseCategory(string(entry.Category)); !ok {
			return nil, fmt.Errorf("directory seed: entry %q has unknown category %q", entry.Name, entry.Category)
		}
		d.byCategory[entry.Category] = append(d.byCategory[entry.Category], entry)
		d.all = append(d.all, entry)
	}
	return d, nil
}

// EntriesFor returns the entries for a category in seed insertion order.
// The general category resolves to the curated mix rather than the whole
// catalog; unknown categories return nil.
func (d *Directory) EntriesFor(category models.Category) []models.ServiceEntry {
	if category.Directory() == models.CategoryGeneral {
		return d.GeneralMix()
	}
	return d.byCategory[category]
}

// All returns the full catalog in seed order.
func (d *Directory) All() []models.ServiceEntry {
	return d.all
}

// GeneralMix returns the curated set served for general or unmatched queries:
// the national hotline, one police station, the top two hospitals, and one
// ambulance service.
func (d *Directory) GeneralMix() []models.ServiceEntry {
	mix := []models.ServiceEntry{d.hotline}
	mix = append(mix, firstN(d.byCategory[models.CategoryPolice], 1)...)
	mix = append(mix, firstN(d.byCategory[models.CategoryHospital], 2)...)
	mix = append(mix, firstN(d.byCategory[models.CategoryAmbulance], 1)...)
	return mix
}

// Hotline returns the national emergency hotline entry.
func (d *Directory) Hotline() models.ServiceEntry {
	return d.hotline
}

// DefaultLocation is the fixed reference coordinate used for distance math
// when the caller supplies no location, keeping ranking deterministic.
func (d *Directory) DefaultLocation() models.Location {
	return d.regions[d.defaultRegion].DefaultLocation
}

// DefaultRegion returns the region key used for lookups.
func (d *Directory) DefaultRegion() string {
	return d.defaultRegion
}

func firstN(entries []models.ServiceEntry, n int) []models.ServiceEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
