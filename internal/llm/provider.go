package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ledger-copilot/internal/config"
)

var (
	ErrUnknownProvider   = errors.New("unknown AI provider")
	ErrMissingCredential = errors.New("AI provider credential is not configured")
)

// ResultKind tags which half of a Result is populated.
type ResultKind string

const (
	ResultToolCall ResultKind = "tool_call"
	ResultText     ResultKind = "text"
)

// Tool describes the single function a provider may call.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type Request struct {
	System      string
	UserMessage string
	Tool        Tool
}

// ToolCall carries the provider's arguments untouched. Decoding and
// validation happen outside this package.
type ToolCall struct {
	Name      string
	Arguments json.RawMessage
}

// Result is either a tool call or a free-text reply. ModelID and RequestID
// are always set when the provider reported them.
type Result struct {
	Kind      ResultKind
	ToolCall  *ToolCall
	Text      string
	ModelID   string
	RequestID string
}

func (r *Result) IsToolCall() bool {
	return r != nil && r.Kind == ResultToolCall && r.ToolCall != nil
}

// Provider sends one grounded request to a language model and normalizes
// the reply. Implementations never retry.
type Provider interface {
	Name() string
	ProposeAction(ctx context.Context, req Request) (*Result, error)
}

// ProviderError reports a failed upstream call. StatusCode is zero when no
// response arrived, in which case Err holds the transport or context error.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	body := e.Body
	if body == "" && e.Err != nil {
		body = e.Err.Error()
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call gave up because the deadline passed.
func (e *ProviderError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// AsProviderError tags err with the provider name unless it already carries
// an upstream failure.
func AsProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return err
	}
	return &ProviderError{Provider: provider, Err: err}
}

// Factory resolves a provider by name from explicit configuration.
type Factory func(cfg config.AIConfig, name string) (Provider, error)

// ResolveName maps a user supplied provider name or alias to its canonical
// form. An empty name resolves to the configured default.
func ResolveName(cfg config.AIConfig, name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = strings.ToLower(strings.TrimSpace(cfg.DefaultProvider))
	}

	switch normalized {
	case "claude", config.ProviderAnthropic:
		return config.ProviderAnthropic, nil
	case "gpt", config.ProviderOpenAI:
		return config.ProviderOpenAI, nil
	case "google", config.ProviderGemini:
		return config.ProviderGemini, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

// NewProvider builds the adapter for name. Credentials are checked here so a
// missing key fails before any network I/O.
func NewProvider(cfg config.AIConfig, name string) (Provider, error) {
	resolved, err := ResolveName(cfg, name)
	if err != nil {
		return nil, err
	}

	switch resolved {
	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingCredential, resolved)
		}
		return newAnthropicProvider(cfg), nil
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingCredential, resolved)
		}
		return newOpenAIProvider(cfg), nil
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingCredential, resolved)
		}
		return newGeminiProvider(cfg), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}
