package service

import (
	"fmt"
	"strings"
)

// Prompt construction for the vision model. The model is asked for strict
// JSON in one of three shapes (bare array, {"items": [...]}, {"item": {...}})
// depending on request mode; the parser accepts all three regardless, since
// models do not always follow shape instructions.

const itemSchemaInstructions = `Each item object MUST contain exactly these keys:
- "name": short item name (string)
- "description": 1-2 sentence description (string)
- "estimatedValue": estimated resale value in EUR as a plain number, no currency symbol (number)
- "quantity": how many of this item are visible, minimum 1 (integer)
- "accuracy": your confidence in the identification, between 0.0 and 1.0 (number)
- "itemType": one of "wine", "vinyl", "general" (string)
- "tags": matching tags from the tag list below (array of strings)
- "collectorDetails": object with ALL of these keys (use null for inapplicable ones):
  - "winery", "vintage", "wineName" (for wine bottles)
  - "artist", "album", "releaseYear" (for vinyl records)

For itemType "wine", fill winery, vintage and wineName and leave the vinyl keys null.
For itemType "vinyl", fill artist, album and releaseYear and leave the wine keys null.
For itemType "general", all collectorDetails keys are null.
Match tags semantically, not literally: a bottle of Bordeaux matches "wine" even if no tag text appears in the image.`

// BuildScanPrompt produces the multi-item instruction text.
func BuildScanPrompt(language string, tags []string) string {
	var b strings.Builder
	b.WriteString("Analyze this image and identify every distinct physical item visible, for a personal collection inventory.\n\n")
	b.WriteString("Respond with a JSON array of item objects and nothing else. No markdown, no code fences, no prose.\n\n")
	b.WriteString(itemSchemaInstructions)
	writePromptFooter(&b, language, tags)
	return b.String()
}

// BuildSingleScanPrompt produces the single-item instruction text. When the
// caller supplied a name hint, the model is steered to that item.
func BuildSingleScanPrompt(language string, tags []string, nameHint string) string {
	var b strings.Builder
	if nameHint != "" {
		b.WriteString(fmt.Sprintf("Analyze this image and identify the item that best matches %q, for a personal collection inventory.\n\n", nameHint))
	} else {
		b.WriteString("Analyze this image and identify the single most prominent item, for a personal collection inventory.\n\n")
	}
	b.WriteString("Respond with a single JSON item object and nothing else. No markdown, no code fences, no prose.\n\n")
	b.WriteString(itemSchemaInstructions)
	writePromptFooter(&b, language, tags)
	return b.String()
}

func writePromptFooter(b *strings.Builder, language string, tags []string) {
	b.WriteString("\n\nAvailable tags: ")
	b.WriteString(strings.Join(tags, ", "))
	if language != "" {
		// Unrecognized codes are passed through literally; the model copes.
		b.WriteString(fmt.Sprintf("\n\nWrite the \"name\" and \"description\" values in the language with code %q.", language))
	}
}
