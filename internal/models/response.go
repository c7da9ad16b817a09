package models

// Classification strategy names, recorded on every classifier output.
const (
	StrategyRemote    = "remote"
	StrategyHeuristic = "heuristic"
)

// Classification is the classifier's verdict for one query. ServiceType and
// Urgency are always both set in a valid Classification; the fallback chain
// substitutes a heuristic result rather than surfacing a partial one.
type Classification struct {
	ServiceType   Category `json:"service_type"`
	Urgency       Urgency  `json:"urgency"`
	LocationHint  string   `json:"location_hint,omitempty"`
	NeedsServices bool     `json:"needs_services"`

	// Analysis and Recommendations are free-text fields supplied by the
	// remote strategy and carried through to assembly. Empty when the
	// heuristic produced this classification; the assembler then
	// synthesizes both from templates.
	Analysis        string   `json:"analysis,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`

	// Strategy records which classifier produced this result.
	Strategy string `json:"strategy"`
}

// Valid reports whether both mandatory fields are set.
func (c *Classification) Valid() bool {
	if c == nil {
		return false
	}
	_, okCat := ParseCategory(string(c.ServiceType))
	_, okUrg := ParseUrgency(string(c.Urgency))
	return okCat && okUrg
}

// QuickAction is one tappable affordance attached to a response.
type QuickAction struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	// Kind is "call" or "share_location".
	Kind string `json:"kind"`
	// Number is the dialable number for call actions.
	Number string `json:"number,omitempty"`
}

// Quick action kinds.
const (
	ActionCall          = "call"
	ActionShareLocation = "share_location"
)

// Response is the final assembled reply for one query. Produced fresh per
// query, never mutated after assembly.
type Response struct {
	Title           string          `json:"title"`
	Icon            string          `json:"icon"`
	Urgency         Urgency         `json:"urgency"`
	Analysis        string          `json:"analysis"`
	Services        []RankedService `json:"services,omitempty"`
	Recommendations []string        `json:"recommendations"`
	Tips            []string        `json:"tips"`
	QuickActions    []QuickAction   `json:"quick_actions"`
	Query           string          `json:"query"`
	Strategy        string          `json:"strategy"`
}
