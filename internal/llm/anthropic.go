package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ledger-copilot/internal/config"
)

const (
	anthropicAPIVersion       = "2023-06-01"
	defaultAnthropicBaseURL   = "https://api.anthropic.com"
	defaultAnthropicMaxTokens = 1024
	maxErrorBodyBytes         = 4096
)

type anthropicRequest struct {
	Model      string               `json:"model"`
	MaxTokens  int                  `json:"max_tokens"`
	System     string               `json:"system,omitempty"`
	Messages   []anthropicMessage   `json:"messages"`
	Tools      []anthropicTool      `json:"tools,omitempty"`
	ToolChoice *anthropicToolChoice `json:"tool_choice,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

type anthropicToolChoice struct {
	Type                   string `json:"type"`
	DisableParallelToolUse bool   `json:"disable_parallel_tool_use"`
}

type anthropicResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type  string          `json:"type"`
	Text  string          `json:"text,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

type anthropicProvider struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	maxTokens  int
}

func newAnthropicProvider(cfg config.AIConfig) *anthropicProvider {
	baseURL := strings.TrimRight(cfg.AnthropicBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}

	maxTokens := cfg.AnthropicMaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	return &anthropicProvider{
		// Deadlines come from the caller's context.
		httpClient: &http.Client{},
		apiKey:     cfg.AnthropicAPIKey,
		model:      cfg.AnthropicModel,
		baseURL:    baseURL,
		maxTokens:  maxTokens,
	}
}

func (p *anthropicProvider) Name() string {
	return config.ProviderAnthropic
}

func (p *anthropicProvider) ProposeAction(ctx context.Context, req Request) (*Result, error) {
	payload := anthropicRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		System:    req.System,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.UserMessage},
		},
		Tools: []anthropicTool{
			{
				Name:        req.Tool.Name,
				Description: req.Tool.Description,
				InputSchema: req.Tool.Parameters,
			},
		},
		ToolChoice: &anthropicToolChoice{Type: "auto", DisableParallelToolUse: true},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, AsProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ProviderError{Provider: p.Name(), StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	requestID := parsed.ID
	if requestID == "" {
		requestID = resp.Header.Get("request-id")
	}

	result := &Result{
		Kind:      ResultText,
		ModelID:   parsed.Model,
		RequestID: requestID,
	}

	for _, block := range parsed.Content {
		switch block.Type {
		case "tool_use":
			if result.ToolCall == nil {
				result.Kind = ResultToolCall
				result.ToolCall = &ToolCall{Name: block.Name, Arguments: block.Input}
			}
		case "text":
			result.Text = block.Text
		}
	}

	return result, nil
}
