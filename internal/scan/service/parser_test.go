package service

import (
	"strings"
	"testing"

	"curio_backend/platform/apperr"
)

const validItemJSON = `{
	"name": "Château Margaux 2015",
	"description": "A premier cru Bordeaux in excellent condition.",
	"estimatedValue": 450.0,
	"quantity": 1,
	"accuracy": 0.92,
	"itemType": "wine",
	"tags": ["wine", "bottle"],
	"collectorDetails": {
		"winery": "Château Margaux",
		"vintage": 2015,
		"wineName": "Château Margaux",
		"artist": null,
		"album": null,
		"releaseYear": null
	}
}`

func TestParseItems_BareArray(t *testing.T) {
	items, dropped, err := ParseItems("[" + validItemJSON + "]")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dropped != 0 {
		t.Fatalf("expected 0 dropped, got %d", dropped)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Château Margaux 2015" {
		t.Fatalf("unexpected name %q", items[0].Name)
	}
	if items[0].CollectorDetails.Vintage == nil || *items[0].CollectorDetails.Vintage != 2015 {
		t.Fatalf("expected vintage 2015, got %v", items[0].CollectorDetails.Vintage)
	}
}

func TestParseItems_CodeFencesAndProse(t *testing.T) {
	raw := "Here you go:\n```json\n[" + validItemJSON + "]\n```\nLet me know if you need anything else."

	fenced, dropped, err := ParseItems(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dropped != 0 {
		t.Fatalf("expected 0 dropped, got %d", dropped)
	}

	bare, _, err := ParseItems("[" + validItemJSON + "]")
	if err != nil {
		t.Fatalf("expected no error for bare array, got %v", err)
	}
	if len(fenced) != len(bare) || fenced[0].Name != bare[0].Name {
		t.Fatalf("fenced parse diverged from bare parse: %v vs %v", fenced, bare)
	}
}

func TestParseItems_WrappedInItemsKey(t *testing.T) {
	items, _, err := ParseItems(`{"items": [` + validItemJSON + `]}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestParseItems_EmptyArray(t *testing.T) {
	items, dropped, err := ParseItems("```json\n[]\n```")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dropped != 0 || len(items) != 0 {
		t.Fatalf("expected empty result, got %d items %d dropped", len(items), dropped)
	}
}

func TestParseItems_FiveItemsWithProse(t *testing.T) {
	elements := make([]string, 5)
	for i := range elements {
		elements[i] = validItemJSON
	}
	raw := "Sure! Here are the detected items:\n```\n[" + strings.Join(elements, ",") + "]\n```"

	items, dropped, err := ParseItems(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dropped != 0 {
		t.Fatalf("expected 0 dropped, got %d", dropped)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
}

func TestParseItems_MalformedElementIsDroppedNotFatal(t *testing.T) {
	raw := `[` + validItemJSON + `, {"name": "incomplete"}]`

	items, dropped, err := ParseItems(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", dropped)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(items))
	}
}

func TestParseItems_UnparseableTextFails(t *testing.T) {
	longText := strings.Repeat("I could not find any JSON to give you. ", 20)

	_, _, err := ParseItems(longText)
	if err == nil {
		t.Fatal("expected parse error")
	}

	appErr, ok := err.(*apperr.Error)
	if !ok {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	details, ok := appErr.Details.(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", appErr.Details)
	}
	if len(details["rawHead"]) > 200 {
		t.Fatalf("head preview exceeds 200 chars: %d", len(details["rawHead"]))
	}
	if len(details["rawTail"]) > 100 {
		t.Fatalf("tail preview exceeds 100 chars: %d", len(details["rawTail"]))
	}
}

func TestParseItem_BareObject(t *testing.T) {
	item, err := ParseItem(validItemJSON)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ItemType != "wine" {
		t.Fatalf("expected itemType wine, got %q", item.ItemType)
	}
}

func TestParseItem_WrappedInItemKey(t *testing.T) {
	item, err := ParseItem("```json\n" + `{"item": ` + validItemJSON + `}` + "\n```")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.Name == "" {
		t.Fatal("expected item name to be set")
	}
}

func TestParseItem_MissingRequiredKeyFails(t *testing.T) {
	_, err := ParseItem(`{"name": "thing", "description": "a thing"}`)
	if err == nil {
		t.Fatal("expected parse error for missing keys")
	}
}

func TestParseItem_MissingDetailSubKeyFails(t *testing.T) {
	raw := `{
		"name": "thing", "description": "a thing", "estimatedValue": 1,
		"quantity": 1, "accuracy": 0.5, "itemType": "general", "tags": [],
		"collectorDetails": {"winery": null, "vintage": null, "wineName": null}
	}`
	_, err := ParseItem(raw)
	if err == nil {
		t.Fatal("expected parse error for missing detail keys")
	}
}

func TestParseItem_NumericStringsAreCoerced(t *testing.T) {
	raw := `{
		"name": "thing", "description": "a thing", "estimatedValue": "12,50",
		"quantity": "2", "accuracy": "0.8", "itemType": "general", "tags": [],
		"collectorDetails": {"winery": null, "vintage": null, "wineName": null, "artist": null, "album": null, "releaseYear": null}
	}`

	item, err := ParseItem(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.EstimatedValue == nil || *item.EstimatedValue != 12.5 {
		t.Fatalf("expected estimatedValue 12.5, got %v", item.EstimatedValue)
	}
	if item.Quantity == nil || *item.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %v", item.Quantity)
	}
	if item.Accuracy == nil || *item.Accuracy != 0.8 {
		t.Fatalf("expected accuracy 0.8, got %v", item.Accuracy)
	}
}

func TestParseItem_NonCoercibleNumericBecomesNil(t *testing.T) {
	raw := `{
		"name": "thing", "description": "a thing", "estimatedValue": "priceless",
		"quantity": true, "accuracy": 0.5, "itemType": "general", "tags": [],
		"collectorDetails": {"winery": null, "vintage": null, "wineName": null, "artist": null, "album": null, "releaseYear": null}
	}`

	item, err := ParseItem(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.EstimatedValue != nil {
		t.Fatalf("expected nil estimatedValue, got %v", *item.EstimatedValue)
	}
	if item.Quantity != nil {
		t.Fatalf("expected nil quantity, got %v", *item.Quantity)
	}
}
