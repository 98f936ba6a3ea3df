package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ledger-copilot/internal/config"

	"google.golang.org/genai"
)

type geminiProvider struct {
	apiKey  string
	model   string
	baseURL string
}

func newGeminiProvider(cfg config.AIConfig) *geminiProvider {
	return &geminiProvider{
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		baseURL: cfg.GeminiBaseURL,
	}
}

func (p *geminiProvider) Name() string {
	return config.ProviderGemini
}

func (p *geminiProvider) ProposeAction(ctx context.Context, req Request) (*Result, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", p.Name(), err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.UserMessage, genai.RoleUser),
	}

	generateConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Tools: []*genai.Tool{
			{
				FunctionDeclarations: []*genai.FunctionDeclaration{
					{
						Name:                 req.Tool.Name,
						Description:          req.Tool.Description,
						ParametersJsonSchema: req.Tool.Parameters,
					},
				},
			},
		},
		ToolConfig: &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, contents, generateConfig)
	if err != nil {
		return nil, p.wrapError(err)
	}

	return normalizeGeminiResponse(resp)
}

// normalizeGeminiResponse picks the first function call, falling back to
// the concatenated text of the first candidate.
func normalizeGeminiResponse(resp *genai.GenerateContentResponse) (*Result, error) {
	if resp == nil {
		return nil, errors.New("empty gemini response")
	}

	result := &Result{
		Kind:      ResultText,
		ModelID:   resp.ModelVersion,
		RequestID: resp.ResponseID,
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.FunctionCall == nil {
				continue
			}

			args, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("failed to encode gemini function args: %w", err)
			}

			result.Kind = ResultToolCall
			result.ToolCall = &ToolCall{Name: part.FunctionCall.Name, Arguments: args}
			return result, nil
		}
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0] != nil && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part != nil && !part.Thought {
				result.Text += part.Text
			}
		}
	}

	return result, nil
}

func (p *geminiProvider) wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Provider: p.Name(), StatusCode: apiErr.Code, Body: apiErr.Message}
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &ProviderError{Provider: p.Name(), StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}

	return AsProviderError(p.Name(), err)
}
