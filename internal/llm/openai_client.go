package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mbeaufort/sleep-metrics/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep tracking assistant.

You receive per-night sleep metrics for a single user: composite sleep
scores (0-100), stage breakdowns (core/deep/REM/awake seconds), HRV and
resting heart rate where available, a signed sleep-debt series against
the user's goal, and optionally the app's current bedtime
recommendation. Base your conclusions only on the provided data.

Your goals:
- Describe the user's recent sleep in clear, neutral language.
- Highlight patterns in duration, stage composition, debt and schedule consistency.
- Compare the most recent nights to the rest of the window.
- If a bedtime recommendation is present, explain in plain terms why the app suggests it.
- Give practical, behavioral suggestions to improve sleep habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, etc.).
- Missing nights mean no data was recorded, not zero sleep; say so when relevant.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the window and how the latest nights compare.",
  "observations": [
    "3-6 bullet points about scores, stage composition, debt and consistency.",
    "At least one item about the debt trend (building up, stable, or repaid).",
    "If vitals are present, one item about HRV or resting heart rate."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about schedule regularity if bedtimes vary.",
    "If debt is positive, include one suggestion consistent with the recommended earlier bedtime."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's recent sleep.

- "nights" lists per-night results, newest first; absent dates had no data.
- "debt" maps days to signed debt seconds (positive = under the goal) with a net total.
- "recommendation", when present, is the app's suggested schedule including the debt-driven shift.
- "goal_minutes" and "goal_wake_time" are the user's configured goal.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating sleep insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate sleep insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
