package assemble

import (
	"strings"
	"testing"

	"github.com/trusttrack/assist/internal/models"
)

func heuristicResult(serviceType models.Category, urgency models.Urgency, hint string) *models.Classification {
	return &models.Classification{
		ServiceType:   serviceType,
		Urgency:       urgency,
		LocationHint:  hint,
		NeedsServices: true,
		Strategy:      models.StrategyHeuristic,
	}
}

func TestAssemble_Presentation(t *testing.T) {
	a := New("dhaka")

	tests := []struct {
		name          string
		serviceType   models.Category
		expectedTitle string
		expectedIcon  string
	}{
		{name: "Police", serviceType: models.CategoryPolice, expectedTitle: "Police Assistance", expectedIcon: "fas fa-shield-alt"},
		{name: "Hospital", serviceType: models.CategoryHospital, expectedTitle: "Medical Emergency", expectedIcon: "fas fa-hospital"},
		{name: "Fire", serviceType: models.CategoryFire, expectedTitle: "Fire Emergency", expectedIcon: "fas fa-fire-extinguisher"},
		{name: "Ambulance", serviceType: models.CategoryAmbulance, expectedTitle: "Emergency Transport", expectedIcon: "fas fa-ambulance"},
		{name: "General", serviceType: models.CategoryGeneral, expectedTitle: "Emergency Services", expectedIcon: "fas fa-info-circle"},
		{name: "Traffic falls back to general", serviceType: models.CategoryTraffic, expectedTitle: "Emergency Services", expectedIcon: "fas fa-info-circle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := models.NewQuery("test query", nil, nil)
			resp := a.Assemble(query, heuristicResult(tt.serviceType, models.UrgencyMedium, "dhaka"), nil)

			if resp.Title != tt.expectedTitle {
				t.Errorf("Expected title %q, got %q", tt.expectedTitle, resp.Title)
			}
			if resp.Icon != tt.expectedIcon {
				t.Errorf("Expected icon %q, got %q", tt.expectedIcon, resp.Icon)
			}
		})
	}
}

func TestAssemble_SynthesizedAnalysis(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("theft near my house", nil, nil)

	resp := a.Assemble(query, heuristicResult(models.CategoryPolice, models.UrgencyHigh, "dhanmondi"), nil)

	if !strings.Contains(resp.Analysis, `"theft near my house"`) {
		t.Errorf("Expected the query echoed in the analysis, got %q", resp.Analysis)
	}
	if !strings.Contains(resp.Analysis, "urgent police situation") {
		t.Errorf("Expected urgency and service in the analysis, got %q", resp.Analysis)
	}
	if !strings.Contains(resp.Analysis, "in Dhanmondi") {
		t.Errorf("Expected the location hint in the analysis, got %q", resp.Analysis)
	}
}

func TestAssemble_AnalysisOmitsDefaultRegion(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("theft near my house", nil, nil)

	resp := a.Assemble(query, heuristicResult(models.CategoryPolice, models.UrgencyMedium, "dhaka"), nil)

	if strings.Contains(resp.Analysis, "in Dhaka") {
		t.Errorf("Expected the default region suppressed, got %q", resp.Analysis)
	}
	if !strings.Contains(resp.Analysis, "standard police situation") {
		t.Errorf("Expected standard urgency wording, got %q", resp.Analysis)
	}
}

func TestAssemble_GeneralAnalysisWording(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("something happened", nil, nil)

	resp := a.Assemble(query, heuristicResult(models.CategoryGeneral, models.UrgencyMedium, "dhaka"), nil)

	if !strings.Contains(resp.Analysis, "emergency situation") {
		t.Errorf("Expected general to read as emergency, got %q", resp.Analysis)
	}
	if !strings.Contains(resp.Analysis, generalInsight) {
		t.Errorf("Expected the general insight appended, got %q", resp.Analysis)
	}
}

func TestAssemble_RemotePassthrough(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("chest pain", nil, nil)

	cls := &models.Classification{
		ServiceType:     models.CategoryHospital,
		Urgency:         models.UrgencyCritical,
		NeedsServices:   true,
		Analysis:        "You may be having a cardiac event.",
		Recommendations: []string{"Call 199 immediately", "Sit down and rest"},
		Strategy:        models.StrategyRemote,
	}

	resp := a.Assemble(query, cls, nil)

	if resp.Analysis != cls.Analysis {
		t.Errorf("Expected remote analysis passed through, got %q", resp.Analysis)
	}
	if len(resp.Recommendations) != 2 || resp.Recommendations[0] != "Call 199 immediately" {
		t.Errorf("Expected remote recommendations passed through, got %v", resp.Recommendations)
	}
	if resp.Strategy != models.StrategyRemote {
		t.Errorf("Expected remote strategy recorded, got %q", resp.Strategy)
	}
}

func TestAssemble_RecommendationsBounded(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("help", nil, nil)

	many := make([]string, 10)
	for i := range many {
		many[i] = "recommendation"
	}
	cls := heuristicResult(models.CategoryPolice, models.UrgencyMedium, "dhaka")
	cls.Recommendations = many

	resp := a.Assemble(query, cls, nil)
	if len(resp.Recommendations) > maxRecommendations {
		t.Errorf("Expected at most %d recommendations, got %d", maxRecommendations, len(resp.Recommendations))
	}
}

func TestAssemble_SynthesizedRecommendations(t *testing.T) {
	a := New("dhaka")

	t.Run("Urgent prepends action line", func(t *testing.T) {
		query := models.NewQuery("robbery happening", nil, nil)
		resp := a.Assemble(query, heuristicResult(models.CategoryPolice, models.UrgencyHigh, "dhaka"), nil)

		if len(resp.Recommendations) == 0 || !strings.Contains(resp.Recommendations[0], "urgent situation") {
			t.Errorf("Expected the urgent line first, got %v", resp.Recommendations)
		}
	})

	t.Run("Night context adds caution", func(t *testing.T) {
		query := models.NewQuery("robbery at night", nil, nil)
		resp := a.Assemble(query, heuristicResult(models.CategoryPolice, models.UrgencyMedium, "dhaka"), nil)

		found := false
		for _, r := range resp.Recommendations {
			if strings.Contains(r, "nighttime") {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a nighttime caution, got %v", resp.Recommendations)
		}
	})

	t.Run("Unlisted category gets base recommendations", func(t *testing.T) {
		query := models.NewQuery("need a lawyer", nil, nil)
		resp := a.Assemble(query, heuristicResult(models.CategoryLegal, models.UrgencyMedium, "dhaka"), nil)

		if len(resp.Recommendations) != len(baseRecommendations) {
			t.Errorf("Expected base recommendations, got %v", resp.Recommendations)
		}
	})
}

func TestAssemble_TipsByUrgency(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("help", nil, nil)

	tests := []struct {
		name     string
		urgency  models.Urgency
		leadWith string
	}{
		{name: "Critical", urgency: models.UrgencyCritical, leadWith: "Call emergency services immediately (999)"},
		{name: "High", urgency: models.UrgencyHigh, leadWith: "Contact emergency services promptly"},
		{name: "Medium", urgency: models.UrgencyMedium, leadWith: "Assess if immediate emergency services are needed"},
		{name: "Low", urgency: models.UrgencyLow, leadWith: baseTips[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.Assemble(query, heuristicResult(models.CategoryGeneral, tt.urgency, "dhaka"), nil)
			if len(resp.Tips) == 0 || resp.Tips[0] != tt.leadWith {
				t.Errorf("Expected tips to lead with %q, got %v", tt.leadWith, resp.Tips)
			}
		})
	}
}

func TestQuickActions(t *testing.T) {
	tests := []struct {
		name        string
		serviceType models.Category
		urgency     models.Urgency
		expected    []string
	}{
		{
			name:        "High urgency hospital",
			serviceType: models.CategoryHospital,
			urgency:     models.UrgencyHigh,
			expected:    []string{"Call 999", "Call Medical (199)", "Share Location"},
		},
		{
			name:        "Medium fire",
			serviceType: models.CategoryFire,
			urgency:     models.UrgencyMedium,
			expected:    []string{"Call Fire Service", "Share Location"},
		},
		{
			name:        "Critical general",
			serviceType: models.CategoryGeneral,
			urgency:     models.UrgencyCritical,
			expected:    []string{"Call 999", "Share Location"},
		},
		{
			name:        "Low urgency legal",
			serviceType: models.CategoryLegal,
			urgency:     models.UrgencyLow,
			expected:    []string{"Share Location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := quickActions(&models.Classification{ServiceType: tt.serviceType, Urgency: tt.urgency})

			if len(actions) != len(tt.expected) {
				t.Fatalf("Expected %d actions, got %d: %v", len(tt.expected), len(actions), actions)
			}
			for i, label := range tt.expected {
				if actions[i].Label != label {
					t.Errorf("Expected action %d to be %q, got %q", i, label, actions[i].Label)
				}
			}

			last := actions[len(actions)-1]
			if last.Kind != models.ActionShareLocation {
				t.Errorf("Expected share location last, got kind %q", last.Kind)
			}
		})
	}
}

func TestAssemble_ServicesCarriedThrough(t *testing.T) {
	a := New("dhaka")
	query := models.NewQuery("police", nil, nil)

	ranked := []models.RankedService{
		{ServiceEntry: models.ServiceEntry{Name: "Dhanmondi Police Station", Category: models.CategoryPolice}, Distance: "0m", Relevance: 1.0},
	}
	resp := a.Assemble(query, heuristicResult(models.CategoryPolice, models.UrgencyMedium, "dhaka"), ranked)

	if len(resp.Services) != 1 || resp.Services[0].Name != "Dhanmondi Police Station" {
		t.Errorf("Expected ranked services carried through, got %v", resp.Services)
	}

	empty := a.Assemble(query, heuristicResult(models.CategoryPolice, models.UrgencyMedium, "dhaka"), nil)
	if empty.Services != nil {
		t.Errorf("Expected nil services when nothing ranked, got %v", empty.Services)
	}
}
