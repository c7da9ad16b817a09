// Package classify derives a service category, urgency level, and location
// hint from free-text queries. Two interchangeable strategies implement the
// same contract: a remote chat-completion call and a local keyword heuristic.
package classify

import (
	"context"

	"github.com/trusttrack/assist/internal/models"
)

// Classifier analyzes a query and returns its classification. Both strategies
// are pure with respect to external state: every call re-classifies from
// scratch, with no caching between invocations.
type Classifier interface {
	Classify(ctx context.Context, query *models.Query) (*models.Classification, error)
}
