package classify

import (
	"context"
	"strings"

	"github.com/trusttrack/assist/internal/models"
	"github.com/trusttrack/assist/pkg/textutil"
)

// Heuristic is the local keyword-scoring strategy. It is total over any
// non-empty query text and needs no external service, which makes it the
// guaranteed terminal fallback of the chain.
//
// It only ever produces high or medium urgency. The remote strategy's
// four-level scale is intentionally not mirrored here.
type Heuristic struct {
	defaultPlace string
}

// NewHeuristic builds the local strategy. defaultPlace is the location hint
// used when the query names no known place.
func NewHeuristic(defaultPlace string) *Heuristic {
	return &Heuristic{defaultPlace: defaultPlace}
}

// Classify scores each category by keyword occurrence count within the
// lowercased query. The strictly highest score wins; ties and zero scores
// resolve to general.
func (h *Heuristic) Classify(_ context.Context, query *models.Query) (*models.Classification, error) {
	text := strings.ToLower(query.Text)

	serviceType := scoreCategories(text)

	urgent := textutil.ContainsAny(text, urgencyKeywords)
	urgency := models.UrgencyMedium
	if urgent {
		urgency = models.UrgencyHigh
	}

	return &models.Classification{
		ServiceType:   serviceType,
		Urgency:       urgency,
		LocationHint:  h.locationHint(text),
		NeedsServices: serviceType != models.CategoryGeneral || urgent,
		Strategy:      models.StrategyHeuristic,
	}, nil
}

// scoreCategories returns the category whose keyword list occurs strictly
// most often in the text, or general when nothing matches or the top score
// is shared.
func scoreCategories(text string) models.Category {
	best := models.CategoryGeneral
	bestScore := 0
	tied := false

	for _, category := range scoredCategories {
		score := textutil.CountOccurrences(text, categoryKeywords[category])
		switch {
		case score > bestScore:
			best = category
			bestScore = score
			tied = false
		case score == bestScore && score > 0:
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return models.CategoryGeneral
	}
	return best
}

// scoredCategories fixes the iteration order over the keyword table so
// classification is deterministic.
var scoredCategories = []models.Category{
	models.CategoryPolice,
	models.CategoryHospital,
	models.CategoryFire,
	models.CategoryAmbulance,
	models.CategoryTraffic,
	models.CategoryPharmacy,
	models.CategoryLegal,
	models.CategoryMentalHealth,
}

func (h *Heuristic) locationHint(text string) string {
	for _, place := range placeNames {
		if strings.Contains(text, place) {
			return place
		}
	}
	return h.defaultPlace
}
