// ABOUTME: Narrow client for AI coaching: meal parsing and session advice.
// ABOUTME: Talks to an OpenAI-compatible chat endpoint, JSON in and out.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bmonteiro/ferro/internal/models"
)

// ErrInvalidResponse means the model did not return the expected JSON.
var ErrInvalidResponse = errors.New("invalid advice response")

// Config holds endpoint settings. Only APIKey is required.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the chat-completions endpoint with fixed request schemas.
// The storage core never depends on it; only CLI commands do.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient validates the config and applies defaults.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("advice api key is required")
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		model:      model,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}, nil
}

// MealEstimate is the parsed nutritional breakdown of a described meal.
type MealEstimate struct {
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	Foods    []string `json:"foods"`
}

// ParseMeal estimates macros for a free-text meal description, using
// standard Brazilian portions as the reference.
func (c *Client) ParseMeal(ctx context.Context, mealText string) (*MealEstimate, error) {
	prompt := fmt.Sprintf(`Analise esta refeição: %q.

Estime os macronutrientes com base em porções padrão brasileiras.
Retorne APENAS um JSON válido:
{"calories":0,"protein":0,"carbs":0,"fats":0,"foods":["alimentos","identificados"]}`, mealText)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var est MealEstimate
	if err := json.Unmarshal([]byte(extractJSONPayload(content)), &est); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &est, nil
}

// CoachRequest carries the context for a pre-session coaching tip.
type CoachRequest struct {
	ExerciseName string
	Goal         models.Goal
	History      []*models.WeightEntry
}

// Advice is the coach's suggestion for the next session.
type Advice struct {
	PreviousWeight    string `json:"previous_weight"`
	SuggestedIncrease string `json:"suggested_increase"`
	TargetWeight      string `json:"target_weight"`
	Tip               string `json:"tip"`
	Motivation        string `json:"motivation"`
}

var goalLabels = map[models.Goal]string{
	models.GoalHypertrophy: "Hipertrofia",
	models.GoalStrength:    "Força Pura",
	models.GoalEndurance:   "Resistência",
	models.GoalWeightLoss:  "Perda de Peso",
}

// CoachAdvice asks for a loading suggestion for the given exercise.
func (c *Client) CoachAdvice(ctx context.Context, req CoachRequest) (*Advice, error) {
	history := "Sem histórico"
	if len(req.History) > 0 {
		var lines []string
		for _, e := range req.History {
			lines = append(lines, fmt.Sprintf("%s: %.1fkg", e.Date, e.Weight))
		}
		history = strings.Join(lines, "\n")
	}
	goal, ok := goalLabels[req.Goal]
	if !ok {
		goal = "Geral"
	}

	prompt := fmt.Sprintf(`Você é um personal trainer de elite. O aluno vai fazer: %q.
Objetivo: %s
Histórico: %s

Retorne APENAS um JSON válido:
{"previous_weight":"valor do último peso","suggested_increase":"quanto aumentar","target_weight":"meta para hoje","tip":"dica técnica curta","motivation":"frase curta motivacional"}`,
		req.ExerciseName, goal, history)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var adv Advice
	if err := json.Unmarshal([]byte(extractJSONPayload(content)), &adv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return &adv, nil
}

// complete sends one user prompt and returns the assistant text.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature":     0.4,
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advice request failed, status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", ErrInvalidResponse
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// extractJSONPayload strips markdown fences and surrounding prose, leaving
// the first JSON object in the content.
func extractJSONPayload(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "{}"
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(trimmed, "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end >= start {
		return trimmed[start : end+1]
	}
	return trimmed
}
