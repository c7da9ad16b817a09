// Package rank orders service-directory entries against a query, combining
// textual relevance with geographic proximity and availability tier.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/trusttrack/assist/internal/directory"
	"github.com/trusttrack/assist/internal/geo"
	"github.com/trusttrack/assist/internal/models"
	"github.com/trusttrack/assist/pkg/textutil"
)

// MaxResults bounds every ranked response.
const MaxResults = 5

// minTokenLen excludes stopword-length tokens from relevance scoring.
const minTokenLen = 2

// Ranker scores and sorts directory entries for one query. It holds only the
// immutable directory, so a single Ranker serves any number of concurrent
// requests.
type Ranker struct {
	dir *directory.Directory
}

// New creates a Ranker over the given directory.
func New(dir *directory.Directory) *Ranker {
	return &Ranker{dir: dir}
}

// Rank resolves the candidates for category, annotates each with distance and
// relevance, and returns them in composite order: always-available entries
// first, then descending relevance, then ascending distance, with
// coordinate-less entries after all distance-bearing ones in the same
// relevance tier. Seed insertion order breaks remaining ties. The result is
// truncated to MaxResults; an empty candidate set yields an empty slice.
func (r *Ranker) Rank(category models.Category, queryText string, loc *models.Location) []models.RankedService {
	candidates := r.dir.EntriesFor(category)
	if len(candidates) == 0 {
		return nil
	}

	origin := r.dir.DefaultLocation()
	if loc != nil {
		origin = *loc
	}

	ranked := make([]rankedEntry, 0, len(candidates))
	for _, entry := range candidates {
		ranked = append(ranked, rankedEntry{
			RankedService: models.RankedService{
				ServiceEntry: entry,
				Distance:     distanceDisplay(entry, origin),
				Relevance:    relevance(queryText, entry.Name+" "+entry.Address),
			},
			km: distanceKm(entry, origin),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.AlwaysAvailable != b.AlwaysAvailable {
			return a.AlwaysAvailable
		}
		if a.Relevance != b.Relevance {
			return a.Relevance > b.Relevance
		}
		return a.km < b.km
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	out := make([]models.RankedService, len(ranked))
	for i, e := range ranked {
		out[i] = e.RankedService
	}
	return out
}

type rankedEntry struct {
	models.RankedService
	// km is the sortable numeric distance: negative for always-available
	// entries, +Inf for coordinate-less ones.
	km float64
}

func distanceKm(entry models.ServiceEntry, origin models.Location) float64 {
	if entry.AlwaysAvailable {
		return -1
	}
	if entry.Location == nil {
		return math.Inf(1)
	}
	return geo.DistanceKm(origin.Latitude, origin.Longitude, entry.Location.Latitude, entry.Location.Longitude)
}

func distanceDisplay(entry models.ServiceEntry, origin models.Location) string {
	if entry.AlwaysAvailable {
		return "Available 24/7"
	}
	if entry.Location == nil {
		return "Available"
	}
	return geo.FormatDistance(geo.DistanceKm(origin.Latitude, origin.Longitude, entry.Location.Latitude, entry.Location.Longitude))
}

// relevance is the word-overlap score between query and service info tokens,
// normalized by query token count and clamped to [0,1]. A token matches when
// either side contains the other, so "dhanmondi" matches "dhanmondi,".
func relevance(queryText, serviceInfo string) float64 {
	queryTokens := textutil.Tokenize(queryText, minTokenLen)
	if len(queryTokens) == 0 {
		return 0
	}
	serviceTokens := textutil.Tokenize(serviceInfo, 0)

	matches := 0
	for _, qt := range queryTokens {
		for _, st := range serviceTokens {
			if strings.Contains(st, qt) || strings.Contains(qt, st) {
				matches++
				break
			}
		}
	}

	score := float64(matches) / float64(len(queryTokens))
	return math.Min(score, 1.0)
}
