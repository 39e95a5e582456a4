package service

import "strings"

// systemTagVocabulary is the fixed classification vocabulary handed to the
// vision model so it matches items semantically across languages ("bottle"
// or "fles" still classifies as wine). Loaded once, never mutated.
var systemTagVocabulary = []string{
	// wine family
	"wine", "wijn", "vin", "wein", "vino", "vinho",
	"bottle", "fles", "bouteille", "flasche", "botella", "garrafa",
	// vinyl family
	"vinyl", "lp", "record", "plaat", "disque", "schallplatte", "disco",
	"album", "elpee",
}

// ResolveTags merges the system vocabulary with caller-supplied tags,
// deduplicating case-insensitively while keeping first-seen casing and
// relative order (system tags first). Pure function; a nil caller list is
// treated as empty.
func ResolveTags(callerTags []string) []string {
	seen := make(map[string]struct{}, len(systemTagVocabulary)+len(callerTags))
	resolved := make([]string, 0, len(systemTagVocabulary)+len(callerTags))

	appendTag := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		resolved = append(resolved, tag)
	}

	for _, tag := range systemTagVocabulary {
		appendTag(tag)
	}
	for _, tag := range callerTags {
		appendTag(tag)
	}
	return resolved
}
