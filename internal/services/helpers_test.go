package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/llm"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMetrics() MetricsRecorderInterface {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

// scriptedProvider replays a fixed reply and remembers the last request.
type scriptedProvider struct {
	mu       sync.Mutex
	name     string
	result   *llm.Result
	err      error
	hang     bool
	requests []llm.Request
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) ProposeAction(ctx context.Context, req llm.Request) (*llm.Result, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	hang := p.hang
	p.mu.Unlock()

	if hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return p.result, p.err
}

func (p *scriptedProvider) lastRequest() llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[len(p.requests)-1]
}

func (p *scriptedProvider) factory() llm.Factory {
	return func(cfg config.AIConfig, name string) (llm.Provider, error) {
		if _, err := llm.ResolveName(cfg, name); err != nil {
			return nil, err
		}
		return p, nil
	}
}

func toolCallResult(args any) *llm.Result {
	raw, _ := json.Marshal(args)
	return &llm.Result{
		Kind:      llm.ResultToolCall,
		ToolCall:  &llm.ToolCall{Name: llm.ProposeRecategorizeToolName, Arguments: raw},
		ModelID:   "test-model",
		RequestID: "req-123",
	}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
