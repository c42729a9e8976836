package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// systemInstruction is the fixed instruction sent with every guidance
// request.
const systemInstruction = "You are a helpful assistant that generates guidance for " +
	"blood pressure readings. Don't end with a question. " +
	"Provide as much comprehensive guidance as possible."

// Generator produces free-text guidance for one reading.  Satisfied by
// Agent; handlers depend on this interface so tests can stub the remote
// service.
type Generator interface {
	GenerateGuidance(ctx context.Context, systolic, diastolic, heartRate int, symptoms string) (string, error)
}

// Agent wraps the Gemini API for guidance generation.  One synchronous
// request per call, no retries, no streaming.
type Agent struct {
	client *genai.Client
	model  string
}

// New returns an Agent bound to the given API key.  The key is required; an
// empty model selects the default.
func New(ctx context.Context, apiKey, model string) (*Agent, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("guidance agent: API key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("guidance agent: create client: %w", err)
	}
	return &Agent{client: client, model: model}, nil
}

// GenerateGuidance sends a single chat request embedding the reading values
// and returns the reply text.  The caller's context bounds the call.
func (a *Agent) GenerateGuidance(ctx context.Context, systolic, diastolic, heartRate int, symptoms string) (string, error) {
	contents := genai.Text(userMessage(systolic, diastolic, heartRate, symptoms))
	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate guidance: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("generate guidance: empty response")
	}
	return text, nil
}

// userMessage formats the reading values into the templated user message.
func userMessage(systolic, diastolic, heartRate int, symptoms string) string {
	return fmt.Sprintf("Systolic: %d, Diastolic: %d, Heart Rate: %d, Symptoms: %s",
		systolic, diastolic, heartRate, symptoms)
}
