package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"gemtrade/logger"
)

const (
	DefaultModel    = "gemini-2.5-flash-lite"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

	// MaxHistory is the number of earlier turns sent with each message.
	MaxHistory = 10
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("assistant: no API key configured")

// Conversation roles understood by Gemini.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// Turn is one message of a chat.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Client talks to the Gemini generateContent API.
type Client struct {
	config Config
	client *http.Client
}

func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether the client has credentials.
func (c *Client) Enabled() bool {
	return c != nil && c.config.APIKey != ""
}

// Chat sends message with the trailing MaxHistory turns of history. The
// business context is passed as the system instruction.
func (c *Client) Chat(ctx context.Context, businessContext string, history []Turn, message string) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}

	req := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt + "\n\n" + businessContext}}},
	}
	for _, turn := range history {
		if turn.Text == "" {
			continue
		}
		role := RoleUser
		if turn.Role == RoleModel || turn.Role == "assistant" {
			role = RoleModel
		}
		req.Contents = append(req.Contents, content{Role: role, Parts: []part{{Text: turn.Text}}})
	}
	req.Contents = append(req.Contents, content{Role: RoleUser, Parts: []part{{Text: message}}})

	logger.Debug("assistant request", "model", c.config.Model, "turns", len(req.Contents))
	reply, err := c.generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	return reply, nil
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, body generateRequest) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent", c.config.Endpoint, c.config.Model)

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
		}
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("Gemini error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini returned empty response")
	}

	var out string
	for _, p := range parsed.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out, nil
}

// truncate cuts s to at most maxLen bytes without splitting a rune.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
