// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// styles.go builds the generated stylesheet. The editor's colors and fonts
// are emitted as CSS custom properties; the semantic component classes that
// consume them exist only for the non-Tailwind frameworks, while Tailwind
// sites still receive the custom rules no utility class covers: the reveal
// animation, toast, print rules, and responsive breakpoints.
package generator

import (
	"strings"

	"webbuilder/internal/models"
)

// buildCSS assembles the stylesheet for the resolved settings. The output
// is fully determined by settings and fw.
func buildCSS(s models.StyleSettings, fw models.CSSFramework) string {
	tw := fw == models.FrameworkTailwind

	var b strings.Builder
	b.WriteString("/* " + fw.Label() + " */\n\n")

	// Custom properties consumed by the semantic classes below (and
	// available to hand-written overrides in any mode).
	b.WriteString(":root {\n")
	b.WriteString("  --color-primary: " + s.Colors.Primary + ";\n")
	b.WriteString("  --color-secondary: " + s.Colors.Secondary + ";\n")
	b.WriteString("  --color-accent: " + s.Colors.Accent + ";\n")
	b.WriteString("  --color-background: " + s.Colors.Background + ";\n")
	b.WriteString("  --font-heading: " + s.Fonts.Heading + ";\n")
	b.WriteString("  --font-body: " + s.Fonts.Body + ";\n")
	b.WriteString("}\n\n")

	if !tw {
		b.WriteString(semanticCSS)
	}

	b.WriteString(commonCSS)

	if s.Responsive {
		if tw {
			b.WriteString(responsiveCommonCSS)
		} else {
			b.WriteString(responsiveSemanticCSS)
			b.WriteString(responsiveCommonCSS)
		}
	}

	return b.String()
}

// semanticCSS styles the semantic class names emitted for bootstrap and
// vanilla sites. Every color and font comes from the custom properties.
const semanticCSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: var(--font-body);
  background: var(--color-background);
  color: #1f2937;
  line-height: 1.6;
}

h1, h2, h3 {
  font-family: var(--font-heading);
}

.site-header {
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  background: var(--color-background);
  box-shadow: 0 1px 4px rgba(0, 0, 0, 0.1);
  z-index: 50;
}

.navbar {
  max-width: 1152px;
  margin: 0 auto;
  padding: 1rem;
  display: flex;
  align-items: center;
  justify-content: space-between;
}

.logo {
  font-size: 1.25rem;
  font-weight: 700;
  color: #111827;
  text-decoration: none;
}

.nav-links {
  display: flex;
  gap: 1.5rem;
  list-style: none;
}

.nav-link {
  color: #4b5563;
  text-decoration: none;
  transition: color 0.2s;
}

.nav-link:hover {
  color: var(--color-primary);
}

.menu-toggle {
  display: none;
  background: none;
  border: none;
  font-size: 1.5rem;
  cursor: pointer;
}

.mobile-menu {
  display: none;
  list-style: none;
  padding: 0 1rem 1rem;
}

.hero {
  padding: 8rem 1rem 6rem;
  text-align: center;
  color: #ffffff;
  background: linear-gradient(90deg, var(--color-primary), var(--color-secondary));
}

.hero-title {
  font-size: 2.5rem;
  margin-bottom: 1rem;
}

.hero-subtitle {
  font-size: 1.125rem;
  margin-bottom: 2rem;
  opacity: 0.9;
}

.btn {
  display: inline-block;
  padding: 0.75rem 2rem;
  border: none;
  border-radius: 0.5rem;
  font-weight: 600;
  text-decoration: none;
  cursor: pointer;
  transition: opacity 0.2s;
}

.btn-primary {
  background: var(--color-accent);
  color: #ffffff;
}

.btn-primary:hover {
  opacity: 0.85;
}

.features, .services, .pricing {
  padding: 5rem 1rem;
  background: #f9fafb;
}

.about, .testimonials, .contact, .generic {
  padding: 5rem 1rem;
}

.section-inner {
  max-width: 768px;
  margin: 0 auto;
  text-align: center;
}

.section-title {
  font-size: 1.875rem;
  text-align: center;
  margin-bottom: 3rem;
}

.section-text {
  color: #4b5563;
}

.card-grid {
  max-width: 1152px;
  margin: 0 auto;
  display: grid;
  grid-template-columns: repeat(3, 1fr);
  gap: 2rem;
}

.card {
  background: var(--color-background);
  border-radius: 0.75rem;
  box-shadow: 0 1px 6px rgba(0, 0, 0, 0.08);
  padding: 2rem;
}

.card-icon {
  font-size: 2.25rem;
  margin-bottom: 1rem;
}

.card-title {
  font-size: 1.25rem;
  margin-bottom: 0.5rem;
}

.card-text {
  color: #4b5563;
}

.pricing-card {
  text-align: center;
}

.pricing-card.highlighted {
  box-shadow: 0 0 0 2px var(--color-primary), 0 4px 12px rgba(0, 0, 0, 0.1);
}

.price {
  font-size: 2.25rem;
  font-weight: 700;
}

.price-period {
  font-size: 1rem;
  font-weight: 400;
  color: #6b7280;
}

.plan-features {
  list-style: none;
  margin: 1.5rem 0;
  color: #4b5563;
}

.plan-features li {
  padding: 0.25rem 0;
}

.quote {
  font-style: italic;
  color: #374151;
  margin-bottom: 1rem;
}

.quote-author {
  font-weight: 600;
}

.quote-role {
  display: block;
  font-size: 0.875rem;
  font-weight: 400;
  color: #6b7280;
}

.contact-info {
  list-style: none;
  text-align: center;
  color: #4b5563;
  margin-bottom: 2rem;
}

.contact-form .form-field {
  width: 100%;
  border: 1px solid #d1d5db;
  border-radius: 0.5rem;
  padding: 0.75rem 1rem;
  margin-bottom: 1rem;
  font-family: var(--font-body);
  font-size: 1rem;
}

.contact-form .btn {
  width: 100%;
}

.about-image {
  margin-top: 2rem;
  border-radius: 0.75rem;
  max-width: 100%;
}

.site-footer {
  padding: 2.5rem 1rem;
  background: #111827;
  color: #d1d5db;
  text-align: center;
}

.footer-links {
  display: flex;
  justify-content: center;
  gap: 1.5rem;
  list-style: none;
  margin-bottom: 1rem;
}

.footer-link {
  color: #d1d5db;
  text-decoration: none;
}

.footer-link:hover {
  color: #ffffff;
}

`

// commonCSS is included for every framework: scroll-reveal animation, toast
// notification, and print rules. Tailwind has no utilities for these.
const commonCSS = `html {
  scroll-behavior: smooth;
}

.reveal-init {
  opacity: 0;
  transform: translateY(24px);
  transition: opacity 0.6s ease-out, transform 0.6s ease-out;
}

.reveal-visible {
  opacity: 1;
  transform: translateY(0);
}

.toast {
  position: fixed;
  bottom: 1.5rem;
  left: 50%;
  transform: translateX(-50%);
  padding: 0.75rem 1.5rem;
  border-radius: 0.5rem;
  color: #ffffff;
  background: #16a34a;
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.15);
  z-index: 100;
  animation: toast-in 0.3s ease-out;
}

.toast-error {
  background: #dc2626;
}

@keyframes toast-in {
  from {
    opacity: 0;
    transform: translate(-50%, 1rem);
  }
  to {
    opacity: 1;
    transform: translate(-50%, 0);
  }
}

@media print {
  header, footer, .toast, #mobile-menu {
    display: none !important;
  }

  body {
    background: #ffffff;
    color: #000000;
  }

  section {
    page-break-inside: avoid;
  }
}
`

// responsiveSemanticCSS collapses the semantic layout on small screens.
const responsiveSemanticCSS = `
@media (max-width: 768px) {
  .nav-links {
    display: none;
  }

  .menu-toggle {
    display: block;
  }

  .mobile-menu:not([hidden]) {
    display: block;
  }

  .card-grid {
    grid-template-columns: 1fr;
  }

  .hero-title {
    font-size: 1.875rem;
  }
}
`

// responsiveCommonCSS holds the framework-independent small-screen rules.
const responsiveCommonCSS = `
@media (max-width: 640px) {
  .toast {
    width: calc(100% - 2rem);
    text-align: center;
  }
}
`
