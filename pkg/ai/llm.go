package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/holdem"
	"holdem-engine/pkg/holdem/action"
)

const systemPrompt = `You are a Texas Hold'em player. You receive the table state as JSON ` +
	`and respond with a single JSON object: {"action": string, "amount": int, "reason": string}. ` +
	`"action" must be one of the legalActions. "amount" is your new total contribution for this ` +
	`betting round and only matters for bet and raise. "reason" is a short sentence explaining ` +
	`your decision. Respond with JSON only.`

// ErrNoAPIKey is returned when an LLM provider is constructed without credentials
var ErrNoAPIKey = errors.New("ai: no API key configured")

// LLMOptions configure the chat-completions endpoint
type LLMOptions struct {
	BaseURL string
	APIKey  string
	Model   string

	// Timeout bounds each request; zero means 30 seconds
	Timeout time.Duration
}

// LLM asks a chat-completions API for decisions. It satisfies Provider.
type LLM struct {
	opts   LLMOptions
	client *http.Client
	logger logrus.FieldLogger
}

// NewLLM returns a provider backed by an OpenAI-compatible chat-completions API
func NewLLM(opts LLMOptions, logger logrus.FieldLogger) (*LLM, error) {
	if opts.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	if opts.Model == "" {
		return nil, errors.New("ai: no model configured")
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &LLM{
		opts:   opts,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Decide builds an observation for the player, asks the model, and parses the
// reply. The returned decision is the model's raw choice; run it through
// Normalize before applying it to the state.
func (l *LLM) Decide(ctx context.Context, state *holdem.State, playerID string) (*Decision, error) {
	obs, err := buildObservation(state, playerID)
	if err != nil {
		return nil, err
	}

	user, err := json.Marshal(obs)
	if err != nil {
		return nil, err
	}

	content, err := l.complete(ctx, string(user))
	if err != nil {
		return nil, err
	}

	decision, err := parseDecision(content)
	if err != nil {
		return nil, err
	}

	l.logger.WithFields(logrus.Fields{
		"player": playerID,
		"action": decision.Action,
		"amount": decision.Amount,
	}).Debug("model decided")

	return decision, nil
}

func (l *LLM) complete(ctx context.Context, user string) (string, error) {
	payload := chatRequest{
		Model: l.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		},
	}
	payload.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+l.opts.APIKey)

	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("chat completions returned %d: %s", resp.StatusCode, truncate(buf.String(), 500))
	}

	var parsed chatResponse
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completions returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// parseDecision reads the model's JSON reply. Models occasionally wrap the
// object in prose or code fences, so a bare first-to-last brace slice is
// retried before giving up.
func parseDecision(content string) (*Decision, error) {
	raw := struct {
		Action string `json:"action"`
		Amount int    `json:"amount"`
		Reason string `json:"reason"`
	}{}

	text := strings.TrimSpace(content)
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		salvaged := extractJSONObject(text)
		if salvaged == "" {
			return nil, fmt.Errorf("could not parse model response: %w", err)
		}

		if err := json.Unmarshal([]byte(salvaged), &raw); err != nil {
			return nil, fmt.Errorf("could not parse model response: %w", err)
		}
	}

	act, err := action.FromString(raw.Action)
	if err != nil {
		// Normalize maps the zero action onto a passive play
		act = ""
	}

	return &Decision{
		Action: act,
		Amount: raw.Amount,
		Reason: raw.Reason,
	}, nil
}

func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}

	return strings.TrimSpace(s[start : end+1])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
