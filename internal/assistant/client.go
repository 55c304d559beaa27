// Package assistant talks to the hosted generative-text service that powers
// the dorm helper chat and the game prompts. Every failure mode collapses to
// a fixed fallback string rendered as ordinary assistant output; nothing
// here is fatal and nothing is retried.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dormmate/dormmate/internal/games"
	"github.com/dormmate/dormmate/internal/model"
)

const defaultModel = "gemini-3-flash-preview"

// Fallback strings surfaced as assistant content. Tests and the UI rely on
// these exact values.
const (
	FallbackEmptyReply = "Sorry, I zoned out for a second. Try again in a bit."
	FallbackChatError  = "Ouch, my brain just jammed. Maybe check whether the API key ran out of credit?"
	FallbackGameEmpty  = "Couldn't come up with a game. Awkward."
	FallbackGameError  = "Game generation went wrong."
)

// systemInstruction is the fixed persona sent with every chat request.
const systemInstruction = `You are "DormMate", the all-round housekeeper of a shared student flat.
Keep your tone young, funny and down to earth (a little internet slang is fine, don't overdo it).
Your jobs:
1. Suggest duty rosters and cleaning plans.
2. Mediate roommate friction with tact.
3. Host small dorm games (truth-or-dare, who-is-the-spy and the like).
4. Give fair advice on splitting shared expenses.`

// Config holds assistant configuration from environment variables.
type Config struct {
	APIKey string
	Model  string
}

// Client calls the generateContent endpoint. A zero API key leaves the
// client unconfigured: every call immediately returns its fallback.
type Client struct {
	config  Config
	client  *http.Client
	baseURL string
}

// NewClient creates an assistant client with the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &Client{
		config:  cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// Chat sends the persona instruction, the prior turns and the new user
// message, and returns the reply text verbatim. Any failure — network,
// status, decode, empty candidate — yields FallbackChatError or
// FallbackEmptyReply instead of an error.
func (c *Client) Chat(ctx context.Context, history []model.ChatMessage, message string) string {
	if !c.Configured() {
		return FallbackChatError
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: string(m.Role), Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: string(model.RoleUser), Parts: []part{{Text: message}}})

	req := generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return FallbackChatError
	}
	if text == "" {
		return FallbackEmptyReply
	}
	return text
}

// GamePrompt asks for kind-specific game content and returns it verbatim,
// or the game fallbacks on failure. No retry; a single failed call surfaces
// the fallback as if it were content.
func (c *Client) GamePrompt(ctx context.Context, kind games.Kind) string {
	if !c.Configured() {
		return FallbackGameError
	}

	req := generateRequest{
		Contents: []content{{Role: string(model.RoleUser), Parts: []part{{Text: promptFor(kind)}}}},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return FallbackGameError
	}
	if text == "" {
		return FallbackGameEmpty
	}
	return text
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.config.Model, c.config.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("assistant request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode assistant response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
