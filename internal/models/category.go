package models

// Category identifies the kind of emergency responder a query maps to.
type Category string

const (
	CategoryPolice       Category = "police"
	CategoryHospital     Category = "hospital"
	CategoryFire         Category = "fire"
	CategoryAmbulance    Category = "ambulance"
	CategoryPharmacy     Category = "pharmacy"
	CategoryLegal        Category = "legal"
	CategoryMentalHealth Category = "mental_health"
	CategoryTraffic      Category = "traffic"
	CategoryInformation  Category = "information"
	CategoryOther        Category = "other"
	CategoryGeneral      Category = "general"
)

// DirectoryCategories lists the categories that have their own bucket in the
// service directory, in display order.
var DirectoryCategories = []Category{
	CategoryPolice,
	CategoryHospital,
	CategoryFire,
	CategoryAmbulance,
	CategoryPharmacy,
	CategoryLegal,
	CategoryMentalHealth,
}

// ParseCategory converts a string to a Category. Returns false for anything
// outside the known set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPolice, CategoryHospital, CategoryFire, CategoryAmbulance,
		CategoryPharmacy, CategoryLegal, CategoryMentalHealth,
		CategoryTraffic, CategoryInformation, CategoryOther, CategoryGeneral:
		return Category(s), true
	}
	return "", false
}

// Directory folds classification-only categories (traffic, information, other)
// onto general, which resolves against the curated general mix. Categories
// with their own directory bucket pass through unchanged.
func (c Category) Directory() Category {
	switch c {
	case CategoryTraffic, CategoryInformation, CategoryOther:
		return CategoryGeneral
	}
	return c
}

// Urgency is the ordinal severity classification of a query.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// ParseUrgency converts a string to an Urgency. Returns false for anything
// outside the four-level scale.
func ParseUrgency(s string) (Urgency, bool) {
	switch Urgency(s) {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return Urgency(s), true
	}
	return "", false
}

// Severity returns the numeric rank of the urgency level
// (critical 4 > high 3 > medium 2 > low 1). Unknown values rank 0.
func (u Urgency) Severity() int {
	switch u {
	case UrgencyCritical:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	}
	return 0
}

// AtLeast reports whether u is at least as severe as other.
func (u Urgency) AtLeast(other Urgency) bool {
	return u.Severity() >= other.Severity()
}
