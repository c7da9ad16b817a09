package classify

import "github.com/trusttrack/assist/internal/models"

// categoryKeywords is the canonical keyword-to-category table. It is the only
// copy in the codebase; every consumer classifies against this one table.
var categoryKeywords = map[models.Category][]string{
	models.CategoryPolice: {
		"police", "theft", "robbery", "crime", "assault", "harassment",
		"fight", "violence", "stolen", "mugging", "attack", "threat",
		"security", "law enforcement",
	},
	models.CategoryHospital: {
		"hospital", "medical", "doctor", "sick", "injury", "health",
		"pain", "heart attack", "stroke", "bleeding", "unconscious", "fever",
	},
	models.CategoryFire: {
		"fire", "smoke", "burning", "flames", "gas leak", "explosion",
		"electrical fire", "building fire",
	},
	models.CategoryAmbulance: {
		"ambulance", "emergency transport", "urgent medical",
		"need transport", "can't move",
	},
	models.CategoryTraffic: {
		"traffic", "car crash", "road", "vehicle", "collision", "highway",
	},
	models.CategoryPharmacy: {
		"pharmacy", "medicine", "drug store", "prescription", "medication",
	},
	models.CategoryLegal: {
		"legal", "lawyer", "court", "rights", "lawsuit",
	},
	models.CategoryMentalHealth: {
		"mental health", "depression", "anxiety", "suicide", "counseling",
		"therapist",
	},
}

// urgencyKeywords flips urgency from medium to high when any appear.
var urgencyKeywords = []string{
	"emergency", "urgent", "help", "now", "immediately", "critical",
	"serious", "asap", "quick",
}

// placeNames is the ordered table of known place names checked against query
// text; the first match becomes the location hint.
var placeNames = []string{
	"dhanmondi", "gulshan", "ramna", "tejgaon", "wari", "old dhaka",
	"new market", "elephant road", "dhaka",
	"chittagong", "chattogram", "sylhet", "rajshahi", "khulna",
}
