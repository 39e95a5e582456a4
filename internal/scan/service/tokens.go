package service

import (
	"fmt"

	"curio_backend/internal/scan/domain"
	"curio_backend/internal/vision"
)

// BuildTokenUsage reconciles the provider's raw counters into the canonical
// record: both naming conventions carry the same values, and a missing total
// is derived from the two sub-counts.
func BuildTokenUsage(raw vision.Usage) domain.TokenUsage {
	total := raw.TotalTokens
	if total == 0 {
		total = raw.PromptTokens + raw.CompletionTokens
	}

	return domain.TokenUsage{
		PromptTokens:     raw.PromptTokens,
		CompletionTokens: raw.CompletionTokens,
		InputTokens:      raw.PromptTokens,
		OutputTokens:     raw.CompletionTokens,
		TotalTokens:      total,
	}
}

// TokenWarning returns a non-fatal warning string when total usage exceeds
// the threshold. The warning goes into the response's warnings list; it
// never fails the request.
func TokenWarning(usage domain.TokenUsage, threshold int) (string, bool) {
	if threshold <= 0 || usage.TotalTokens <= threshold {
		return "", false
	}
	return fmt.Sprintf("high token usage: %d tokens exceeds threshold of %d", usage.TotalTokens, threshold), true
}
