package llm

import (
	"context"
	"encoding/json"
	"errors"

	"ledger-copilot/internal/config"

	"github.com/sashabaranov/go-openai"
)

type openaiProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(cfg config.AIConfig) *openaiProvider {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	return &openaiProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAIModel,
	}
}

func (p *openaiProvider) Name() string {
	return config.ProviderOpenAI
}

func (p *openaiProvider) ProposeAction(ctx context.Context, req Request) (*Result, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
		Tools: []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        req.Tool.Name,
					Description: req.Tool.Description,
					Parameters:  req.Tool.Parameters,
				},
			},
		},
		ToolChoice:        "auto",
		ParallelToolCalls: false,
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, p.wrapError(err)
	}

	result := &Result{
		Kind:      ResultText,
		ModelID:   resp.Model,
		RequestID: resp.ID,
	}

	if len(resp.Choices) == 0 {
		return result, nil
	}

	message := resp.Choices[0].Message
	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0]
		result.Kind = ResultToolCall
		result.ToolCall = &ToolCall{
			Name:      call.Function.Name,
			Arguments: rawArguments(call.Function.Arguments),
		}
		return result, nil
	}

	result.Text = message.Content
	return result, nil
}

func (p *openaiProvider) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: p.Name(), StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &ProviderError{Provider: p.Name(), StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}

	return AsProviderError(p.Name(), err)
}

// rawArguments keeps unparsable argument strings intact by encoding them as
// a JSON string, which the validator then rejects as the wrong shape.
func rawArguments(arguments string) json.RawMessage {
	if json.Valid([]byte(arguments)) {
		return json.RawMessage(arguments)
	}

	encoded, _ := json.Marshal(arguments)
	return json.RawMessage(encoded)
}
