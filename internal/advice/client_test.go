// ABOUTME: Tests for the AI coaching client against a fake chat endpoint.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmonteiro/ferro/internal/models"
)

// chatServer returns a fake chat-completions endpoint whose assistant
// message content is exactly reply.
func chatServer(t *testing.T, reply string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if capture != nil {
			body, _ := io.ReadAll(r.Body)
			*capture = string(body)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": reply}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: baseURL, APIKey: "test-key"})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("Expected error with empty API key")
	}
	if _, err := NewClient(Config{APIKey: "   "}); err == nil {
		t.Error("Expected error with blank API key")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(Config{APIKey: "k"})
	require.NoError(t, err)
	if c.baseURL != "https://api.openai.com" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.model != "gpt-4o-mini" {
		t.Errorf("model = %q", c.model)
	}
}

func TestParseMeal(t *testing.T) {
	var gotRequest string
	server := chatServer(t, `{"calories":650,"protein":42,"carbs":75,"fats":18,"foods":["arroz","frango","feijão"]}`, &gotRequest)
	defer server.Close()

	c := newTestClient(t, server.URL)
	est, err := c.ParseMeal(context.Background(), "arroz com frango e feijão")
	require.NoError(t, err)

	if est.Calories != 650 || est.Protein != 42 {
		t.Errorf("Estimate = %+v", est)
	}
	require.Len(t, est.Foods, 3)

	// The meal text goes into the prompt verbatim.
	if !json.Valid([]byte(gotRequest)) {
		t.Fatalf("Request body is not JSON: %s", gotRequest)
	}
	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal([]byte(gotRequest), &req))
	require.Len(t, req.Messages, 1)
	if req.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", req.Model)
	}
}

func TestParseMealFencedResponse(t *testing.T) {
	server := chatServer(t, "```json\n{\"calories\":300,\"protein\":20,\"carbs\":30,\"fats\":8,\"foods\":[\"ovo\"]}\n```", nil)
	defer server.Close()

	c := newTestClient(t, server.URL)
	est, err := c.ParseMeal(context.Background(), "dois ovos")
	require.NoError(t, err)
	if est.Calories != 300 {
		t.Errorf("Calories = %v, want 300", est.Calories)
	}
}

func TestParseMealGarbageResponse(t *testing.T) {
	server := chatServer(t, "não consegui analisar essa refeição", nil)
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.ParseMeal(context.Background(), "???")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Expected ErrInvalidResponse, got %v", err)
	}
}

func TestCoachAdvice(t *testing.T) {
	reply := `Aqui está a análise:
{"previous_weight":"60kg","suggested_increase":"+2.5kg","target_weight":"62.5kg","tip":"Cotovelos a 45 graus","motivation":"Bora!"}`
	server := chatServer(t, reply, nil)
	defer server.Close()

	c := newTestClient(t, server.URL)
	adv, err := c.CoachAdvice(context.Background(), CoachRequest{
		ExerciseName: "Supino Reto",
		Goal:         models.GoalHypertrophy,
		History: []*models.WeightEntry{
			{Date: "2026-04-28", Weight: 82},
		},
	})
	require.NoError(t, err)

	if adv.TargetWeight != "62.5kg" || adv.Tip == "" {
		t.Errorf("Advice = %+v", adv)
	}
}

func TestCoachAdviceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.CoachAdvice(context.Background(), CoachRequest{ExerciseName: "Supino Reto"})
	if err == nil {
		t.Error("Expected error on 503")
	}
}

func TestExtractJSONPayload(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Claro! {"a":1} Espero que ajude.`, `{"a":1}`},
		{"empty", "", "{}"},
		{"no object", "sem json aqui", "sem json aqui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONPayload(tt.content); got != tt.want {
				t.Errorf("extractJSONPayload(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
