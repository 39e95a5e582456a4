package domain

// TokenUsage is the canonical usage record for one vision call. The API has
// shipped both naming conventions over time, so both are populated with
// identical values and older clients keep working.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	InputTokens      int `json:"inputTokens"`
	OutputTokens     int `json:"outputTokens"`
	TotalTokens      int `json:"totalTokens"`
}
