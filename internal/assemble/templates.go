package assemble

import "github.com/trusttrack/assist/internal/models"

// National emergency numbers surfaced in quick actions and template copy.
const (
	hotlineNumber     = "999"
	medicalNumber     = "199"
	fireServiceNumber = "9555555"
)

type presentation struct {
	Title string
	Icon  string
}

// presentations maps each service type to its title/icon pair. Types without
// their own entry fall back to the general presentation.
var presentations = map[models.Category]presentation{
	models.CategoryPolice:       {Title: "Police Assistance", Icon: "fas fa-shield-alt"},
	models.CategoryHospital:     {Title: "Medical Emergency", Icon: "fas fa-hospital"},
	models.CategoryFire:         {Title: "Fire Emergency", Icon: "fas fa-fire-extinguisher"},
	models.CategoryAmbulance:    {Title: "Emergency Transport", Icon: "fas fa-ambulance"},
	models.CategoryPharmacy:     {Title: "Emergency Pharmacy", Icon: "fas fa-pills"},
	models.CategoryLegal:        {Title: "Legal Assistance", Icon: "fas fa-gavel"},
	models.CategoryMentalHealth: {Title: "Mental Health Support", Icon: "fas fa-brain"},
}

var generalPresentation = presentation{Title: "Emergency Services", Icon: "fas fa-info-circle"}

// categoryInsights closes the synthesized analysis with a service-specific
// next step.
var categoryInsights = map[models.Category]string{
	models.CategoryPolice:    "I've found nearby police stations and emergency contacts. If this is an active crime, call 999 immediately.",
	models.CategoryHospital:  "I've located the nearest hospitals and medical facilities. For life-threatening emergencies, call 199 for ambulance service.",
	models.CategoryFire:      "I've identified fire emergency services in your area. Evacuate immediately if you're in danger and call 9555555.",
	models.CategoryAmbulance: "I've found available ambulance services. Call 999 or the specific numbers below for emergency transport.",
	models.CategoryPharmacy:  "I've located nearby pharmacies, including 24-hour options for urgent medication needs.",
}

const generalInsight = "I've compiled a list of relevant emergency services that can assist with your situation."

var baseRecommendations = []string{
	"Stay calm and speak clearly when calling for help",
	"Provide your exact location to emergency services",
	"Keep important contact numbers saved in your phone",
}

var categoryRecommendations = map[models.Category][]string{
	models.CategoryPolice: {
		"Call 999 immediately for active crimes or threats",
		"Try to get to a safe location if possible",
		"Note down important details: time, location, description",
		"If reporting theft, gather any evidence you have",
	},
	models.CategoryHospital: {
		"Call 199 for medical emergencies requiring ambulance",
		"If conscious, try to provide symptoms and medical history",
		"Bring ID and any medications you're currently taking",
		"For chest pain or stroke symptoms, seek immediate care",
	},
	models.CategoryFire: {
		"Call 9555555 immediately for fire emergencies",
		"Evacuate the building using stairs, never elevators",
		"Stay low to avoid smoke inhalation",
		"Don't re-enter the building until cleared by fire department",
	},
	models.CategoryAmbulance: {
		"Call 999 for emergency ambulance service",
		"Be prepared to provide exact location and landmarks",
		"Describe the nature of the emergency clearly",
		"Stay with the patient if trained to provide first aid",
	},
	models.CategoryPharmacy: {
		"Bring your prescription and ID",
		"Call ahead to confirm medication availability",
		"For emergency contraception, no prescription needed",
		"Ask pharmacist about generic alternatives if available",
	},
}

var baseTips = []string{
	"Save important numbers in your phone for quick access",
	"Keep your phone charged for emergency situations",
	"Stay calm and provide clear information when calling for help",
}

// tipsFor returns the urgency-tiered safety tips. Critical and high tiers
// lead with immediate-action tips; lower tiers stay general.
func tipsFor(urgency models.Urgency) []string {
	switch urgency {
	case models.UrgencyCritical:
		return appendTips([]string{
			"Call emergency services immediately (999)",
			"Share your exact location with emergency responders",
			"Follow dispatcher instructions carefully",
			"Stay on the line until help arrives",
		}, baseTips)
	case models.UrgencyHigh:
		return appendTips([]string{
			"Contact emergency services promptly",
			"Provide detailed information about the situation",
			"Share your location with emergency services",
		}, baseTips)
	case models.UrgencyMedium:
		return appendTips([]string{
			"Assess if immediate emergency services are needed",
			"Consider contacting relevant services for assistance",
		}, baseTips, []string{
			"Document important details if safe to do so",
		})
	default:
		return appendTips(baseTips, []string{
			"Research and plan ahead for potential emergencies",
			"Know your local emergency services and their contact numbers",
		})
	}
}

func appendTips(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
