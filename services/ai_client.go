package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GDG-MenuMate/MenuMate-BE/pkg/apierr"
)

// AIResult is the AI server's answer: up to one recommendation per
// meal slot, each slot independently nullable.
type AIResult struct {
	Morning *AIRecommendation `json:"morning"`
	Lunch   *AIRecommendation `json:"lunch"`
	Dinner  *AIRecommendation `json:"dinner"`
}

type AIRecommendation struct {
	RestaurantName string   `json:"restaurant_name"`
	MenuName       string   `json:"menu_name"`
	Price          int      `json:"price"`
	Justification  string   `json:"justification"`
	Score          float64  `json:"score"`
	Hashtags       []string `json:"hashtags"`
}

// AIHealth is the result of a liveness probe. Probing never fails;
// unreachability is data, not an error.
type AIHealth struct {
	Available bool   `json:"available"`
	Status    int    `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

type AIClient struct {
	endpoint string
	client   *http.Client
}

func NewAIClient(endpoint string) *AIClient {
	return &AIClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Recommend sends the input to the AI server in a single attempt.
// Callers get an *apierr.Error: AI_CONFIG_MISSING before any network
// I/O when no endpoint is configured, AI_BAD_GATEWAY for transport
// failures and non-2xx upstream answers.
func (a *AIClient) Recommend(ctx context.Context, input AIInput) (*AIResult, error) {
	if a.endpoint == "" {
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeAIConfigMissing, "AI_ENDPOINT is not set")
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// the AI server is fronted by ngrok during development
	req.Header.Set("ngrok-skip-browser-warning", "true")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apierr.BadGateway("AI request failed", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.BadGateway("AI request failed", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierr.BadGateway(
			fmt.Sprintf("AI request failed: %d %s", resp.StatusCode, string(respBytes)), nil)
	}

	var result AIResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, apierr.BadGateway("AI response decode failed", err)
	}
	return &result, nil
}

// CheckHealth probes the AI server's /health endpoint, derived from
// the recommendation endpoint. Diagnostic only; never returns an
// error and never gates /recommend.
func (a *AIClient) CheckHealth() AIHealth {
	if a.endpoint == "" {
		return AIHealth{Available: false, Error: "AI_ENDPOINT is not set"}
	}

	healthURL := strings.TrimSuffix(a.endpoint, "/recommend") + "/health"
	req, err := http.NewRequest(http.MethodGet, healthURL, nil)
	if err != nil {
		return AIHealth{Available: false, Error: err.Error()}
	}
	req.Header.Set("ngrok-skip-browser-warning", "true")

	resp, err := a.client.Do(req)
	if err != nil {
		return AIHealth{Available: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return AIHealth{
			Available: false,
			Status:    resp.StatusCode,
			Error:     fmt.Sprintf("AI server returned %d", resp.StatusCode),
		}
	}
	return AIHealth{Available: true, Status: resp.StatusCode}
}
