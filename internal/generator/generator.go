// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a project's content tree and style settings into
// a standalone static site bundle: one HTML document, one stylesheet, one
// script, and a readme. Generation is a pure function — no I/O, no
// randomness — so identical inputs (with the clock frozen to the day)
// produce byte-identical output.
package generator

import (
	"html"
	"strings"
	"time"

	"webbuilder/internal/models"
)

// Bundle holds the four generated text artifacts of one export. Immutable
// once produced; it lives only for the duration of the request.
type Bundle struct {
	HTML   string `json:"html"`
	CSS    string `json:"css"`
	JS     string `json:"js"`
	Readme string `json:"readme"`
}

// Generate renders the content tree into a complete site bundle for the
// selected CSS framework. An empty component list falls back to the default
// five-section layout; unknown component types render as generic sections.
// There is no error path: malformed payloads degrade to per-field defaults.
func Generate(content *models.PageContent, fw models.CSSFramework, projectName string, now time.Time) Bundle {
	if content == nil {
		content = &models.PageContent{}
	}
	settings := resolveSettings(content.Settings)

	components := content.Components
	if len(components) == 0 {
		components = defaultComponents()
	}

	return Bundle{
		HTML:   buildHTML(components, fw, projectName),
		CSS:    buildCSS(settings, fw),
		JS:     buildScript(),
		Readme: buildReadme(projectName, fw, now),
	}
}

// buildHTML assembles the full document: head with framework includes, then
// every component in order, then the script tag.
func buildHTML(components []models.Component, fw models.CSSFramework, projectName string) string {
	// The one flag that selects Tailwind utility classes over semantic
	// class names for every element in the document.
	tw := fw == models.FrameworkTailwind

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"tr\">\n<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("  <title>" + html.EscapeString(projectName) + "</title>\n")
	b.WriteString(headIncludes(fw))
	b.WriteString("  <link rel=\"stylesheet\" href=\"styles.css\">\n")
	b.WriteString("</head>\n")
	if tw {
		b.WriteString("<body class=\"font-sans antialiased\">\n")
	} else {
		b.WriteString("<body>\n")
	}

	for _, c := range components {
		b.WriteString(renderComponent(c, tw))
	}

	b.WriteString("<script src=\"script.js\"></script>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// headIncludes returns the framework-specific CDN tags. Vanilla sites load
// nothing beyond the generated stylesheet.
func headIncludes(fw models.CSSFramework) string {
	switch fw {
	case models.FrameworkTailwind:
		return "  <script src=\"https://cdn.tailwindcss.com\"></script>\n"
	case models.FrameworkBootstrap:
		return "  <link href=\"https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css\" rel=\"stylesheet\">\n" +
			"  <script src=\"https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js\" defer></script>\n"
	default:
		return ""
	}
}

// renderComponent dispatches a component to its section template. The
// switch is total over the closed type set; anything unrecognized renders
// through the generic template.
func renderComponent(c models.Component, tw bool) string {
	switch c.Type {
	case models.ComponentHeader:
		return renderHeader(c.Header(), tw)
	case models.ComponentHero:
		return renderHero(c.Hero(), tw)
	case models.ComponentFeatures:
		return renderFeatures(c.Features(), tw)
	case models.ComponentAbout:
		return renderAbout(c.About(), tw)
	case models.ComponentServices:
		return renderServices(c.Services(), tw)
	case models.ComponentTestimonials:
		return renderTestimonials(c.Testimonials(), tw)
	case models.ComponentPricing:
		return renderPricing(c.Pricing(), tw)
	case models.ComponentContact:
		return renderContact(c.Contact(), tw)
	case models.ComponentFooter:
		return renderFooter(c.Footer(), tw)
	default:
		return renderGeneric(c.Generic(), tw)
	}
}

// defaultComponents is the canonical fallback layout for an empty content
// tree: a complete five-section landing page plus header, all rendered from
// the fixed Turkish defaults.
func defaultComponents() []models.Component {
	return []models.Component{
		{Type: models.ComponentHeader},
		{Type: models.ComponentHero},
		{Type: models.ComponentAbout},
		{Type: models.ComponentServices},
		{Type: models.ComponentContact},
		{Type: models.ComponentFooter},
	}
}

// esc HTML-escapes a user-supplied string for safe embedding in markup.
func esc(s string) string {
	return html.EscapeString(s)
}
