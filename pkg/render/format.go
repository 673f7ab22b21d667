package render

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// DatePlaceholderWidth is the underscore count printed for empty dates.
	DatePlaceholderWidth = 10
	// NamePlaceholderWidth is used for the employee name.
	NamePlaceholderWidth = 30
	// FieldPlaceholderWidth is used for the remaining identification fields.
	FieldPlaceholderWidth = 20
)

// Accepted input layouts: HTML date inputs, the printed layouts and full
// timestamps (only the date part is kept).
var dateInputLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
	time.RFC3339,
}

// Date output layouts, matched against the requested locale. The first entry
// is the fallback. Every layout keeps day/month/year order.
var (
	dateLocales = []language.Tag{
		language.BrazilianPortuguese,
		language.German,
	}
	dateLayouts = []string{
		"02/01/2006",
		"02.01.2006",
	}
	dateMatcher = language.NewMatcher(dateLocales)
)

// Placeholder returns width underscores.
func Placeholder(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("_", width)
}

// FormatDate renders value (as typed by the user) for locale. Empty values
// yield the date placeholder; values that do not parse as a date are printed
// as-is, trimmed.
func FormatDate(value, locale string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Placeholder(DatePlaceholderWidth)
	}
	parsed, ok := parseDate(value)
	if !ok {
		return value
	}
	return parsed.Format(DateLayout(locale))
}

// DateLayout returns the Go time layout used for locale.
func DateLayout(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return dateLayouts[0]
	}
	_, idx := language.MatchStrings(dateMatcher, locale)
	if idx < 0 || idx >= len(dateLayouts) {
		return dateLayouts[0]
	}
	return dateLayouts[idx]
}

// ValidDateInput reports whether value is blank or parses with one of the
// accepted input layouts.
func ValidDateInput(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	_, ok := parseDate(value)
	return ok
}

// ValidLocale reports whether locale is a well-formed BCP 47 tag.
func ValidLocale(locale string) bool {
	_, err := language.Parse(strings.TrimSpace(locale))
	return err == nil
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func orPlaceholder(value string, width int) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder(width)
	}
	return value
}
