package llm

// ProposeRecategorizeToolName is the only tool a provider is offered.
const ProposeRecategorizeToolName = "propose_recategorize"

// SystemPrompt constrains the model to the rows it is shown.
const SystemPrompt = `You are a financial assistant operating over deterministic transaction data.
Rules you MUST follow:
1) Never invent transactions, IDs, amounts, or balances.
2) If you cannot answer using the provided transaction rows, say: "I don't have enough data to answer."
3) Every recommendation must cite the exact transaction UUIDs from the provided dataset.
4) To request changes, you MUST call the tool propose_recategorize with real transaction_ids only.
5) Do not call tools unless the user explicitly asked for a change.`

// ProposeRecategorizeTool returns the JSON schema advertised to providers.
// A fresh map is returned on every call since adapters may annotate it.
func ProposeRecategorizeTool() Tool {
	return Tool{
		Name:        ProposeRecategorizeToolName,
		Description: "Propose recategorizing a set of existing transactions to a given category. Must reference real transaction IDs previously provided by the system.",
		Parameters: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"transaction_ids": map[string]any{
					"type":     "array",
					"minItems": 1,
					"maxItems": 50,
					"items": map[string]any{
						"type":        "string",
						"description": "UUID of an existing transaction row.",
					},
				},
				"category_name": map[string]any{
					"type":      "string",
					"minLength": 1,
					"maxLength": 64,
				},
				"rationale": map[string]any{
					"type":      "string",
					"minLength": 1,
					"maxLength": 500,
				},
				"citations": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":        "string",
						"description": "Must be one of transaction_ids.",
					},
				},
			},
			"required": []string{"transaction_ids", "category_name", "rationale", "citations"},
		},
	}
}
