// Package assemble composes the final structured reply from classifier and
// ranker output. A single stateless pass: no retries, no mutation after
// assembly.
package assemble

import (
	"fmt"
	"strings"

	"github.com/trusttrack/assist/internal/models"
)

// maxRecommendations caps the recommendation list on every response.
const maxRecommendations = 6

// Assembler builds Responses. defaultRegion suppresses the "in <place>"
// clause when the location hint is just the catalog default.
type Assembler struct {
	defaultRegion string
}

// New creates an Assembler for the given default region key.
func New(defaultRegion string) *Assembler {
	return &Assembler{defaultRegion: defaultRegion}
}

// Assemble produces the Response for one query. Analysis and recommendations
// pass through from the remote classifier when present and are synthesized
// from templates otherwise. An empty ranked list omits the services section
// entirely.
func (a *Assembler) Assemble(query *models.Query, cls *models.Classification, ranked []models.RankedService) *models.Response {
	pres, ok := presentations[cls.ServiceType]
	if !ok {
		pres = generalPresentation
	}

	return &models.Response{
		Title:           pres.Title,
		Icon:            pres.Icon,
		Urgency:         cls.Urgency,
		Analysis:        a.analysis(query, cls),
		Services:        ranked,
		Recommendations: a.recommendations(query, cls),
		Tips:            tipsFor(cls.Urgency),
		QuickActions:    quickActions(cls),
		Query:           query.Text,
		Strategy:        cls.Strategy,
	}
}

func (a *Assembler) analysis(query *models.Query, cls *models.Classification) string {
	if cls.Analysis != "" {
		return cls.Analysis
	}

	urgencyText := "standard"
	if cls.Urgency.AtLeast(models.UrgencyHigh) {
		urgencyText = "urgent"
	}
	serviceText := strings.ReplaceAll(string(cls.ServiceType), "_", " ")
	if cls.ServiceType == models.CategoryGeneral {
		serviceText = "emergency"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your query %q, I've identified this as a %s %s situation", query.Text, urgencyText, serviceText)
	if cls.LocationHint != "" && cls.LocationHint != a.defaultRegion {
		fmt.Fprintf(&b, " in %s", titleCase(cls.LocationHint))
	}
	b.WriteString(". ")

	if insight, ok := categoryInsights[cls.ServiceType]; ok {
		b.WriteString(insight)
	} else {
		b.WriteString(generalInsight)
	}
	return b.String()
}

func (a *Assembler) recommendations(query *models.Query, cls *models.Classification) []string {
	if len(cls.Recommendations) > 0 {
		return bound(cls.Recommendations, maxRecommendations)
	}

	var recs []string
	if specific, ok := categoryRecommendations[cls.ServiceType]; ok {
		recs = append(recs, specific...)
		recs = append(recs, baseRecommendations[0])
	} else {
		recs = append(recs, baseRecommendations...)
	}

	if cls.Urgency.AtLeast(models.UrgencyHigh) {
		recs = append([]string{"This appears to be an urgent situation - prioritize immediate action"}, recs...)
	}

	lower := strings.ToLower(query.Text)
	if strings.Contains(lower, "night") || strings.Contains(lower, "late") {
		recs = append(recs, "Be extra cautious during nighttime emergencies")
	}
	if strings.Contains(lower, "alone") {
		recs = append(recs, "Consider calling a trusted friend or family member if safe to do so")
	}

	return bound(recs, maxRecommendations)
}

// quickActions emits one action per matched condition: the emergency hotline
// for critical/high urgency, a service-specific dial action, and always a
// share-location action.
func quickActions(cls *models.Classification) []models.QuickAction {
	var actions []models.QuickAction

	if cls.Urgency.AtLeast(models.UrgencyHigh) {
		actions = append(actions, models.QuickAction{
			Label:  "Call 999",
			Icon:   "fas fa-phone",
			Kind:   models.ActionCall,
			Number: hotlineNumber,
		})
	}

	switch cls.ServiceType {
	case models.CategoryHospital, models.CategoryAmbulance:
		actions = append(actions, models.QuickAction{
			Label:  "Call Medical (199)",
			Icon:   "fas fa-hospital",
			Kind:   models.ActionCall,
			Number: medicalNumber,
		})
	case models.CategoryFire:
		actions = append(actions, models.QuickAction{
			Label:  "Call Fire Service",
			Icon:   "fas fa-fire-extinguisher",
			Kind:   models.ActionCall,
			Number: fireServiceNumber,
		})
	}

	actions = append(actions, models.QuickAction{
		Label: "Share Location",
		Icon:  "fas fa-map-marker-alt",
		Kind:  models.ActionShareLocation,
	})

	return actions
}

func bound(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
