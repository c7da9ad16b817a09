package classify

import (
	"context"
	"time"

	"github.com/trusttrack/assist/internal/logger"
	"github.com/trusttrack/assist/internal/metrics"
	"github.com/trusttrack/assist/internal/models"
)

// Chain is the two-level degrade path: remote classification first, the local
// heuristic when that fails. Each level runs at most once per query; there is
// no backoff and no re-attempt of the remote call within a request.
type Chain struct {
	remote Classifier
	local  Classifier
}

// NewChain builds the fallback chain. remote may be nil when no remote
// classifier is configured, in which case every query classifies locally.
func NewChain(remote, local Classifier) *Chain {
	return &Chain{remote: remote, local: local}
}

// Classify resolves a classification, degrading silently from the remote
// strategy to the heuristic. The heuristic cannot fail over non-empty input,
// so the caller always receives a complete result.
func (c *Chain) Classify(ctx context.Context, query *models.Query) (*models.Classification, error) {
	if c.remote != nil {
		start := time.Now()
		result, err := c.remote.Classify(ctx, query)
		if err == nil && result.Valid() {
			metrics.RecordClassification(models.StrategyRemote, "ok", time.Since(start))
			return result, nil
		}
		metrics.RecordClassification(models.StrategyRemote, "error", time.Since(start))
		metrics.RecordFallback()
		logger.WithContext(ctx).Warn("remote classification failed, using heuristic",
			"error", err,
			"query_id", query.ID,
		)
	}

	start := time.Now()
	result, err := c.local.Classify(ctx, query)
	if err != nil {
		metrics.RecordClassification(models.StrategyHeuristic, "error", time.Since(start))
		return nil, err
	}
	metrics.RecordClassification(models.StrategyHeuristic, "ok", time.Since(start))
	return result, nil
}
