package service

import (
	"testing"

	"curio_backend/internal/vision"
)

func TestBuildTokenUsage_BothConventionsPopulated(t *testing.T) {
	usage := BuildTokenUsage(vision.Usage{PromptTokens: 1200, CompletionTokens: 300, TotalTokens: 1500})

	if usage.PromptTokens != usage.InputTokens {
		t.Fatalf("prompt/input mismatch: %d vs %d", usage.PromptTokens, usage.InputTokens)
	}
	if usage.CompletionTokens != usage.OutputTokens {
		t.Fatalf("completion/output mismatch: %d vs %d", usage.CompletionTokens, usage.OutputTokens)
	}
	if usage.TotalTokens != 1500 {
		t.Fatalf("expected total 1500, got %d", usage.TotalTokens)
	}
}

func TestBuildTokenUsage_TotalDerivedWhenAbsent(t *testing.T) {
	usage := BuildTokenUsage(vision.Usage{PromptTokens: 1000, CompletionTokens: 250})

	if usage.TotalTokens != 1250 {
		t.Fatalf("expected derived total 1250, got %d", usage.TotalTokens)
	}
}

func TestBuildTokenUsage_AllZero(t *testing.T) {
	usage := BuildTokenUsage(vision.Usage{})

	if usage.TotalTokens != 0 {
		t.Fatalf("expected total 0, got %d", usage.TotalTokens)
	}
	if _, warned := TokenWarning(usage, 15000); warned {
		t.Fatal("expected no warning for zero usage")
	}
}

func TestTokenWarning_AboveThreshold(t *testing.T) {
	usage := BuildTokenUsage(vision.Usage{PromptTokens: 14000, CompletionTokens: 2000, TotalTokens: 16000})

	warning, warned := TokenWarning(usage, 15000)
	if !warned {
		t.Fatal("expected warning above threshold")
	}
	if warning == "" {
		t.Fatal("expected non-empty warning text")
	}
}

func TestTokenWarning_AtThresholdIsSilent(t *testing.T) {
	usage := BuildTokenUsage(vision.Usage{TotalTokens: 15000})

	if _, warned := TokenWarning(usage, 15000); warned {
		t.Fatal("expected no warning at exactly the threshold")
	}
}
