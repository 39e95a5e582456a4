package vision

import (
	"context"
	"time"

	"google.golang.org/genai"

	"curio_backend/platform/apperr"
	"curio_backend/platform/logger"
)

// Usage holds the raw token counters reported by the model provider.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Image is one inline image payload for a vision call.
type Image struct {
	Data     []byte
	MIMEType string
}

// Result is the raw outcome of a vision call: the model's text plus usage
// counters. Parsing the text is the caller's concern.
type Result struct {
	Text  string
	Usage Usage
}

// Analyzer is the vision model boundary the scan service depends on.
type Analyzer interface {
	Generate(ctx context.Context, prompt string, images []Image) (*Result, error)
}

// GeminiClient calls the Gemini API with an inline image and a prompt.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, model string, log *logger.Logger) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create vision client", err)
	}
	return &GeminiClient{client: client, model: model, logger: log}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string, images []Image) (*Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "vision model call failed", err).WithOp("vision.generate")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, apperr.New(apperr.KindUnavailable, "vision model returned no candidates").WithOp("vision.generate")
	}

	result := &Result{Text: resp.Text()}
	if resp.UsageMetadata != nil {
		result.Usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	c.logger.VisionCall(c.model, len(images),
		int64(result.Usage.PromptTokens), int64(result.Usage.CompletionTokens), int64(result.Usage.TotalTokens),
		float64(time.Since(start).Milliseconds()))

	return result, nil
}
