package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-epiform/pkg/company"
)

const (
	// DefaultLocale is the locale the legal document is written for.
	DefaultLocale = "pt-BR"
	// DefaultRevision is the form code printed in the footer.
	DefaultRevision = "FOR-RH-001. Rev. 01"
)

// RenderOptions carries per-render settings that are not part of the form
// state.
type RenderOptions struct {
	// Locale selects the date layout. Defaults to DefaultLocale.
	Locale string
	// Company fills the company-details grid. The zero value falls back to
	// the embedded company profile.
	Company company.Profile
	// Theme supplies print style tokens (font family, sizes, border color)
	// that the document renderer exposes as CSS custom properties.
	Theme *theme.Manifest
	// ThemeVariant selects one of Theme.Variants; its tokens override the
	// manifest tokens.
	ThemeVariant string
	// Revision overrides the footer form code.
	Revision string
}

// WithDefaults returns a copy of o with every empty setting resolved.
func (o RenderOptions) WithDefaults() RenderOptions {
	o.Locale = strings.TrimSpace(o.Locale)
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	o.Revision = strings.TrimSpace(o.Revision)
	if o.Revision == "" {
		o.Revision = DefaultRevision
	}
	o.ThemeVariant = strings.TrimSpace(o.ThemeVariant)
	if o.Company.IsZero() {
		if profile, err := company.Default(); err == nil {
			o.Company = profile
		}
	}
	return o
}

// ThemeTokens returns the manifest tokens merged with the selected variant.
// It returns nil when no theme is configured.
func (o RenderOptions) ThemeTokens() map[string]string {
	if o.Theme == nil {
		return nil
	}
	tokens := make(map[string]string, len(o.Theme.Tokens))
	for key, value := range o.Theme.Tokens {
		tokens[key] = value
	}
	if o.ThemeVariant == "" {
		return tokens
	}
	if variant, ok := o.Theme.Variants[o.ThemeVariant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}
