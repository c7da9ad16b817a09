package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/trusttrack/assist/internal/apperrors"
)

// MaxHistoryTurns caps how much conversation context a query carries. Older
// turns are discarded on ingestion to bound payload size.
const MaxHistoryTurns = 10

// Turn is one prior message in the conversation, role "user" or "assistant".
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Query is one user request. It is created per request and discarded after
// response assembly; nothing here outlives the request that owns it.
type Query struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Location *Location `json:"location,omitempty"`
	History  []Turn    `json:"history,omitempty"`
}

// NewQuery builds a Query from raw request input. Text is trimmed and history
// is bounded to the most recent MaxHistoryTurns turns.
func NewQuery(text string, loc *Location, history []Turn) *Query {
	if len(history) > MaxHistoryTurns {
		history = history[len(history)-MaxHistoryTurns:]
	}
	return &Query{
		ID:       uuid.NewString(),
		Text:     strings.TrimSpace(text),
		Location: loc,
		History:  history,
	}
}

// Validate rejects empty or whitespace-only queries before classification.
func (q *Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return apperrors.ErrInvalidQuery
	}
	return nil
}

// RecentHistory returns up to the last n turns, most recent last.
func (q *Query) RecentHistory(n int) []Turn {
	if n <= 0 || len(q.History) == 0 {
		return nil
	}
	if len(q.History) > n {
		return q.History[len(q.History)-n:]
	}
	return q.History
}
