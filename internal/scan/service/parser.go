package service

import (
	"encoding/json"
	"strings"

	"curio_backend/internal/scan/domain"
	"curio_backend/platform/apperr"
)

const (
	rawHeadPreview = 200
	rawTailPreview = 100
)

// Parsing of vision model output. The model is instructed to answer with
// bare JSON, but in practice wraps it in code fences, prose, or a named
// container object. The parser tries, in order: the cleaned text as-is, the
// greedy bracket span inside it, and finally the cleaned text decoded as the
// container itself. Only when all attempts fail does the request fail.

// ParseItems decodes model output expected to contain a JSON array of item
// records (optionally wrapped in an object under "items"). Elements that
// fail required-key validation are dropped, not fatal: partial results beat
// total failure for multi-item responses. Returns the items and the number
// of dropped elements.
func ParseItems(raw string) ([]domain.DetectedItem, int, error) {
	payload, ok := extractArray(raw, "items")
	if !ok {
		return nil, 0, parseError(raw)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return nil, 0, parseError(raw)
	}

	items := make([]domain.DetectedItem, 0, len(elements))
	dropped := 0
	for _, element := range elements {
		item, err := decodeItem(element)
		if err != nil {
			dropped++
			continue
		}
		items = append(items, *item)
	}

	return items, dropped, nil
}

// ParseItem decodes model output expected to contain a single item object
// (optionally wrapped under "item"). Unlike array mode there is no partial
// result to salvage, so a record failing validation is a parse error.
func ParseItem(raw string) (*domain.DetectedItem, error) {
	payload, ok := extractObject(raw, "item")
	if !ok {
		return nil, parseError(raw)
	}

	item, err := decodeItem(payload)
	if err != nil {
		return nil, parseError(raw)
	}
	return item, nil
}

// stripCodeFences removes a leading ``` marker (with optional language tag)
// and a trailing ``` marker, case-insensitively.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		rest := text[3:]
		// Drop the language tag up to the first newline, e.g. ```json or ```JSON.
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			text = rest[idx+1:]
		} else {
			text = strings.TrimLeft(rest, "jsonJSON")
		}
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// extractArray finds the JSON array payload in model output, accepting a
// bare array, a {"items": [...]} wrapper, or either embedded in prose.
func extractArray(raw, unwrapKey string) (json.RawMessage, bool) {
	clean := stripCodeFences(raw)

	if payload, ok := tryDecodeArray(clean, unwrapKey); ok {
		return payload, true
	}
	if span, ok := bracketSpan(clean, '[', ']'); ok {
		if payload, ok := tryDecodeArray(span, unwrapKey); ok {
			return payload, true
		}
	}
	if span, ok := bracketSpan(clean, '{', '}'); ok {
		if payload, ok := tryDecodeArray(span, unwrapKey); ok {
			return payload, true
		}
	}
	return nil, false
}

// extractObject finds the JSON object payload in model output, accepting a
// bare object, an {"item": {...}} wrapper, or either embedded in prose.
func extractObject(raw, unwrapKey string) (json.RawMessage, bool) {
	clean := stripCodeFences(raw)

	if payload, ok := tryDecodeObject(clean, unwrapKey); ok {
		return payload, true
	}
	if span, ok := bracketSpan(clean, '{', '}'); ok {
		if payload, ok := tryDecodeObject(span, unwrapKey); ok {
			return payload, true
		}
	}
	return nil, false
}

func tryDecodeArray(text, unwrapKey string) (json.RawMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(text), &arr); err == nil {
		return json.RawMessage(text), true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &wrapper); err == nil {
		if inner, ok := wrapper[unwrapKey]; ok {
			if err := json.Unmarshal(inner, &arr); err == nil {
				return inner, true
			}
		}
	}
	return nil, false
}

func tryDecodeObject(text, unwrapKey string) (json.RawMessage, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, false
	}

	if inner, ok := obj[unwrapKey]; ok {
		var innerObj map[string]json.RawMessage
		if err := json.Unmarshal(inner, &innerObj); err == nil {
			return inner, true
		}
	}
	return json.RawMessage(text), true
}

// bracketSpan returns the greedy span from the first open bracket to the
// last close bracket, the same heuristic used for fishing JSON out of
// chatty model responses.
func bracketSpan(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// requiredItemKeys are the top-level keys every item record must carry.
var requiredItemKeys = []string{
	"name", "description", "estimatedValue", "quantity",
	"accuracy", "itemType", "tags", "collectorDetails",
}

// requiredDetailKeys are the collector-detail sub-fields; all must be
// present (null is fine, absent is not).
var requiredDetailKeys = []string{
	"winery", "vintage", "wineName", "artist", "album", "releaseYear",
}

// decodeItem validates required keys and builds a DetectedItem, coercing
// the bounded numeric fields leniently: a field that fails coercion becomes
// nil instead of rejecting the whole item.
func decodeItem(element json.RawMessage) (*domain.DetectedItem, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil {
		return nil, err
	}
	for _, key := range requiredItemKeys {
		if _, ok := fields[key]; !ok {
			return nil, &missingKeyError{key: key}
		}
	}

	var details map[string]json.RawMessage
	if err := json.Unmarshal(fields["collectorDetails"], &details); err != nil {
		return nil, err
	}
	for _, key := range requiredDetailKeys {
		if _, ok := details[key]; !ok {
			return nil, &missingKeyError{key: "collectorDetails." + key}
		}
	}

	item := &domain.DetectedItem{
		Name:        decodeString(fields["name"]),
		Description: decodeString(fields["description"]),
		ItemType:    domain.ItemType(strings.ToLower(decodeString(fields["itemType"]))),
		Tags:        decodeStrings(fields["tags"]),
	}
	if item.Name == "" {
		return nil, &missingKeyError{key: "name"}
	}

	item.EstimatedValue = NormalizeNumber(decodeAny(fields["estimatedValue"]), ValueBounds)
	item.Quantity = normalizeInt(decodeAny(fields["quantity"]), QuantityBounds)
	item.Accuracy = NormalizeNumber(decodeAny(fields["accuracy"]), AccuracyBounds)

	item.CollectorDetails = domain.CollectorDetails{
		Winery:      decodeStringPtr(details["winery"]),
		Vintage:     normalizeInt(decodeAny(details["vintage"]), YearBounds),
		WineName:    decodeStringPtr(details["wineName"]),
		Artist:      decodeStringPtr(details["artist"]),
		Album:       decodeStringPtr(details["album"]),
		ReleaseYear: normalizeInt(decodeAny(details["releaseYear"]), YearBounds),
	}

	return item, nil
}

type missingKeyError struct {
	key string
}

func (e *missingKeyError) Error() string {
	return "missing required key: " + e.key
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func decodeStringPtr(raw json.RawMessage) *string {
	s := decodeString(raw)
	if s == "" {
		return nil
	}
	return &s
}

func decodeStrings(raw json.RawMessage) []string {
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	results := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func decodeAny(raw json.RawMessage) interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// parseError builds the request-fatal parse error with bounded previews of
// the raw model text. Full untrusted content is never surfaced to callers.
func parseError(raw string) *apperr.Error {
	head := raw
	if len(head) > rawHeadPreview {
		head = head[:rawHeadPreview]
	}
	tail := ""
	if len(raw) > rawHeadPreview {
		tail = raw
		if len(tail) > rawTailPreview {
			tail = tail[len(tail)-rawTailPreview:]
		}
	}

	return apperr.Internal("vision model output could not be parsed").
		WithOp("scan.parse").
		WithDetails(map[string]string{
			"rawHead": head,
			"rawTail": tail,
		})
}
