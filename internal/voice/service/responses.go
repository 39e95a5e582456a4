package service

import (
	"fmt"
	"strconv"
	"strings"

	"curio_backend/platform/validator"
)

const fallbackLanguage = "en"

// phrases holds the sentence templates of one spoken-response language.
type phrases struct {
	notFound string // item name
	found    string // item name
	value    string // formatted amount
	quantity string // count
	many     string // count, item name
}

var spokenPhrases = map[string]phrases{
	"en": {
		notFound: "I could not find %s in your collection.",
		found:    "%s is in your collection.",
		value:    "Its estimated value is %s euros.",
		quantity: "You have %d of them.",
		many:     "I found %d items matching %s.",
	},
	"nl": {
		notFound: "Ik kon %s niet vinden in je collectie.",
		found:    "%s zit in je collectie.",
		value:    "De geschatte waarde is %s euro.",
		quantity: "Je hebt er %d van.",
		many:     "Ik vond %d items die overeenkomen met %s.",
	},
	"fr": {
		notFound: "Je n'ai pas trouvé %s dans votre collection.",
		found:    "%s fait partie de votre collection.",
		value:    "Sa valeur estimée est de %s euros.",
		quantity: "Vous en avez %d.",
		many:     "J'ai trouvé %d objets correspondant à %s.",
	},
	"de": {
		notFound: "Ich konnte %s nicht in deiner Sammlung finden.",
		found:    "%s ist in deiner Sammlung.",
		value:    "Der geschätzte Wert beträgt %s Euro.",
		quantity: "Du hast %d davon.",
		many:     "Ich habe %d Objekte gefunden, die zu %s passen.",
	},
	"es": {
		notFound: "No pude encontrar %s en tu colección.",
		found:    "%s está en tu colección.",
		value:    "Su valor estimado es de %s euros.",
		quantity: "Tienes %d de ellos.",
		many:     "Encontré %d artículos que coinciden con %s.",
	},
	"it": {
		notFound: "Non ho trovato %s nella tua collezione.",
		found:    "%s è nella tua collezione.",
		value:    "Il suo valore stimato è di %s euro.",
		quantity: "Ne hai %d.",
		many:     "Ho trovato %d oggetti che corrispondono a %s.",
	},
	"pt": {
		notFound: "Não encontrei %s na sua coleção.",
		found:    "%s está na sua coleção.",
		value:    "O seu valor estimado é de %s euros.",
		quantity: "Você tem %d deles.",
		many:     "Encontrei %d itens correspondentes a %s.",
	},
}

// resolveLanguage maps a caller language code to a supported spoken language,
// falling back to English for anything unrecognized.
func resolveLanguage(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if validator.IsSupportedLanguage(normalized) {
		return normalized
	}
	return fallbackLanguage
}

// formatAmount renders a value without trailing zeros ("45", "12.5").
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type spokenItem struct {
	Name           string
	EstimatedValue *float64
	Quantity       *int
}

// buildSpokenText composes a localized reply for the given matches.
func buildSpokenText(language, searched string, items []spokenItem) string {
	p := spokenPhrases[language]

	if len(items) == 0 {
		return fmt.Sprintf(p.notFound, searched)
	}

	first := items[0]
	parts := []string{fmt.Sprintf(p.found, first.Name)}
	if len(items) > 1 {
		parts = []string{fmt.Sprintf(p.many, len(items), searched), fmt.Sprintf(p.found, first.Name)}
	}

	if first.EstimatedValue != nil && *first.EstimatedValue > 0 {
		parts = append(parts, fmt.Sprintf(p.value, formatAmount(*first.EstimatedValue)))
	}
	if first.Quantity != nil && *first.Quantity > 1 {
		parts = append(parts, fmt.Sprintf(p.quantity, *first.Quantity))
	}

	return strings.Join(parts, " ")
}
