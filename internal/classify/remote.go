package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/trusttrack/assist/internal/apperrors"
	"github.com/trusttrack/assist/internal/models"
)

// historyTurnsForRemote bounds how many prior turns accompany the query on
// the wire.
const historyTurnsForRemote = 5

const systemPrompt = `You are an expert emergency response assistant for Bangladesh with deep knowledge of local emergency services, cultural context, and safety protocols. Always prioritize user safety and provide accurate, actionable guidance. Be empathetic and helpful while maintaining professionalism.

Analyze the user's request and respond with a single JSON object of this exact shape:
{
    "serviceType": "police|hospital|fire|ambulance|pharmacy|legal|mental_health|traffic|information|general|other",
    "urgency": "critical|high|medium|low",
    "location": "any specific location mentioned or null",
    "needsServices": true,
    "analysis": "A detailed, helpful analysis of the user's request and what type of assistance they need",
    "recommendations": ["Specific actionable recommendations", "Emergency numbers to call", "Safety precautions to take"]
}

Respond with the JSON object only, no surrounding text.`

// RemoteConfig configures the remote classification strategy.
type RemoteConfig struct {
	// Endpoint is the Azure OpenAI resource endpoint. Empty means the
	// public OpenAI API.
	Endpoint   string
	APIKey     string
	Deployment string
	Timeout    time.Duration
}

// Remote classifies queries through a hosted chat-completion endpoint. It
// performs exactly one attempt per invocation; retry policy, if any, belongs
// to the caller.
type Remote struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewRemote builds the remote strategy from config.
func NewRemote(cfg RemoteConfig) *Remote {
	var clientCfg openai.ClientConfig
	if cfg.Endpoint != "" {
		clientCfg = openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	} else {
		clientCfg = openai.DefaultConfig(cfg.APIKey)
	}

	model := cfg.Deployment
	if model == "" {
		model = "gpt-4o"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 8 * time.Second
	}

	return &Remote{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: timeout,
	}
}

// remotePayload is the structured-output schema the endpoint is instructed to
// return. Field names match the original wire format.
type remotePayload struct {
	ServiceType     string   `json:"serviceType"`
	Urgency         string   `json:"urgency"`
	Location        string   `json:"location"`
	NeedsServices   *bool    `json:"needsServices"`
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
}

// Classify sends the query plus recent history to the chat-completion
// endpoint and parses the structured reply. Any transport failure, non-success
// status, or unparseable body yields ErrClassificationUnavailable.
func (r *Remote) Classify(ctx context.Context, query *models.Query) (*models.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, historyTurnsForRemote+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, turn := range query.RecentHistory(historyTurnsForRemote) {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query.Text,
	})

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Messages:    messages,
		MaxTokens:   800,
		Temperature: 0.2,
		TopP:        0.9,
	})
	if err != nil {
		return nil, apperrors.Unavailable(models.StrategyRemote, err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.Unavailable(models.StrategyRemote, fmt.Errorf("empty completion"))
	}

	return parseRemoteContent(resp.Choices[0].Message.Content)
}

// parseRemoteContent decodes and validates the model's JSON reply.
func parseRemoteContent(content string) (*models.Classification, error) {
	var payload remotePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return nil, apperrors.Unavailable(models.StrategyRemote, fmt.Errorf("malformed completion: %w", err))
	}

	serviceType, ok := models.ParseCategory(payload.ServiceType)
	if !ok {
		return nil, apperrors.Unavailable(models.StrategyRemote, fmt.Errorf("unknown service type %q", payload.ServiceType))
	}
	urgency, ok := models.ParseUrgency(payload.Urgency)
	if !ok {
		return nil, apperrors.Unavailable(models.StrategyRemote, fmt.Errorf("unknown urgency %q", payload.Urgency))
	}

	needsServices := serviceType != models.CategoryGeneral
	if payload.NeedsServices != nil {
		needsServices = *payload.NeedsServices
	}

	return &models.Classification{
		ServiceType:     serviceType,
		Urgency:         urgency,
		LocationHint:    strings.TrimSpace(payload.Location),
		NeedsServices:   needsServices,
		Analysis:        strings.TrimSpace(payload.Analysis),
		Recommendations: payload.Recommendations,
		Strategy:        models.StrategyRemote,
	}, nil
}
