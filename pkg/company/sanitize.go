package company

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	logoPolicyOnce sync.Once
	logoPolicy     *bluemonday.Policy
)

func sanitizeLogoMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(logoSanitizer().Sanitize(trimmed))
	if cleaned == "" {
		return ""
	}
	return cleaned
}

func logoSanitizer() *bluemonday.Policy {
	logoPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "text", "tspan", "title", "defs", "use",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "preserveAspectRatio", "role", "aria-label", "class",
		).OnElements("svg")

		policy.AllowAttrs("href").OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "width", "height", "fill", "stroke",
				"stroke-width", "transform", "class",
			).OnElements(el)
		}

		policy.AllowAttrs(
			"x", "y", "dx", "dy", "fill", "font-family", "font-size",
			"font-weight", "text-anchor",
		).OnElements("text", "tspan")

		policy.AllowAttrs("id", "transform", "fill").OnElements("g")

		logoPolicy = policy
	})
	return logoPolicy
}
