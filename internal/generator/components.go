// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// components.go contains one render function per component type. Each
// function reads only its own decoded payload, applies the Turkish field
// defaults, and emits either Tailwind utility classes or semantic class
// names depending on the tw flag — never both on the same element.
package generator

import (
	"strings"

	"webbuilder/internal/models"
)

// cls picks the class attribute value for the active framework mode.
func cls(tw bool, utility, semantic string) string {
	if tw {
		return utility
	}
	return semantic
}

func renderHeader(d models.HeaderData, tw bool) string {
	logo := fallback(d.Logo, defaultLogo)
	links := d.Links
	if len(links) == 0 {
		links = defaultNavLinks()
	}

	var b strings.Builder
	b.WriteString(`<header class="` + cls(tw,
		"fixed top-0 left-0 w-full bg-white shadow-md z-50",
		"site-header") + `">` + "\n")
	b.WriteString(`  <nav class="` + cls(tw,
		"max-w-6xl mx-auto px-4 py-4 flex items-center justify-between",
		"navbar") + `">` + "\n")
	b.WriteString(`    <a href="#" class="` + cls(tw,
		"text-xl font-bold text-gray-900",
		"logo") + `">` + esc(logo) + "</a>\n")

	// Desktop navigation.
	b.WriteString(`    <ul class="` + cls(tw,
		"hidden md:flex gap-6",
		"nav-links") + `">` + "\n")
	for _, l := range links {
		href := fallback(l.Href, "#")
		b.WriteString(`      <li><a href="` + esc(href) + `" class="` + cls(tw,
			"text-gray-600 hover:text-gray-900 transition",
			"nav-link") + `">` + esc(l.Label) + "</a></li>\n")
	}
	b.WriteString("    </ul>\n")

	// Mobile menu button — wired by script.js.
	b.WriteString(`    <button id="menu-toggle" type="button" aria-label="Menü" class="` + cls(tw,
		"md:hidden text-2xl",
		"menu-toggle") + `">&#9776;</button>` + "\n")
	b.WriteString("  </nav>\n")

	// Collapsed mobile menu, toggled by script.js.
	b.WriteString(`  <ul id="mobile-menu" hidden class="` + cls(tw,
		"md:hidden flex flex-col gap-2 px-4 pb-4 bg-white",
		"mobile-menu") + `">` + "\n")
	for _, l := range links {
		href := fallback(l.Href, "#")
		b.WriteString(`    <li><a href="` + esc(href) + `" class="` + cls(tw,
			"block py-2 text-gray-600",
			"nav-link") + `">` + esc(l.Label) + "</a></li>\n")
	}
	b.WriteString("  </ul>\n</header>\n")
	return b.String()
}

func renderHero(d models.HeroData, tw bool) string {
	title := fallback(d.Title, defaultHeroTitle)
	subtitle := fallback(d.Subtitle, defaultHeroSubtitle)
	cta := fallback(d.CTA, defaultHeroCTA)
	ctaLink := fallback(d.CTALink, defaultHeroCTALink)

	var b strings.Builder
	b.WriteString(`<section id="hero" class="` + cls(tw,
		"pt-32 pb-24 px-4 text-center text-white bg-gradient-to-r from-blue-600 to-indigo-700",
		"hero") + `">` + "\n")
	b.WriteString(`  <h1 class="` + cls(tw,
		"text-4xl md:text-6xl font-bold mb-4",
		"hero-title") + `">` + esc(title) + "</h1>\n")
	b.WriteString(`  <p class="` + cls(tw,
		"text-lg md:text-xl mb-8 opacity-90",
		"hero-subtitle") + `">` + esc(subtitle) + "</p>\n")
	b.WriteString(`  <a href="` + esc(ctaLink) + `" class="` + cls(tw,
		"inline-block px-8 py-3 rounded-lg bg-white text-blue-700 font-semibold hover:bg-gray-100 transition",
		"btn btn-primary") + `">` + esc(cta) + "</a>\n")
	b.WriteString("</section>\n")
	return b.String()
}

func renderFeatures(d models.FeaturesData, tw bool) string {
	title := fallback(d.Title, defaultFeaturesTitle)
	items := d.Items
	if len(items) == 0 {
		items = defaultFeatureItems()
	}

	var b strings.Builder
	b.WriteString(`<section id="ozellikler" class="` + cls(tw,
		"py-20 px-4 bg-gray-50",
		"features") + `">` + "\n")
	b.WriteString(`  <h2 class="` + cls(tw,
		"text-3xl font-bold text-center mb-12",
		"section-title") + `">` + esc(title) + "</h2>\n")
	b.WriteString(`  <div class="` + cls(tw,
		"max-w-6xl mx-auto grid gap-8 md:grid-cols-3",
		"card-grid") + `">` + "\n")
	for _, it := range items {
		b.WriteString(`    <div class="` + cls(tw,
			"bg-white rounded-xl shadow p-8 text-center",
			"card feature-card") + `">` + "\n")
		if it.Icon != "" {
			b.WriteString(`      <div class="` + cls(tw, "text-4xl mb-4", "card-icon") + `">` + esc(it.Icon) + "</div>\n")
		}
		b.WriteString(`      <h3 class="` + cls(tw, "text-xl font-semibold mb-2", "card-title") + `">` + esc(it.Title) + "</h3>\n")
		b.WriteString(`      <p class="` + cls(tw, "text-gray-600", "card-text") + `">` + esc(it.Description) + "</p>\n")
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}

func renderAbout(d models.AboutData, tw bool) string {
	title := fallback(d.Title, defaultAboutTitle)
	text := fallback(d.Text, defaultAboutText)

	var b strings.Builder
	b.WriteString(`<section id="hakkimizda" class="` + cls(tw,
		"py-20 px-4",
		"about") + `">` + "\n")
	b.WriteString(`  <div class="` + cls(tw, "max-w-3xl mx-auto text-center", "section-inner") + `">` + "\n")
	b.WriteString(`    <h2 class="` + cls(tw,
		"text-3xl font-bold mb-6",
		"section-title") + `">` + esc(title) + "</h2>\n")
	b.WriteString(`    <p class="` + cls(tw,
		"text-gray-600 leading-relaxed",
		"section-text") + `">` + esc(text) + "</p>\n")
	if d.Image != "" {
		b.WriteString(`    <img src="` + esc(d.Image) + `" alt="` + esc(title) + `" class="` + cls(tw,
			"mt-8 rounded-xl mx-auto",
			"about-image") + `">` + "\n")
	}
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}

func renderServices(d models.ServicesData, tw bool) string {
	title := fallback(d.Title, defaultServicesTitle)
	items := d.Items
	if len(items) == 0 {
		items = defaultServiceItems()
	}

	var b strings.Builder
	b.WriteString(`<section id="hizmetler" class="` + cls(tw,
		"py-20 px-4 bg-gray-50",
		"services") + `">` + "\n")
	b.WriteString(`  <h2 class="` + cls(tw,
		"text-3xl font-bold text-center mb-12",
		"section-title") + `">` + esc(title) + "</h2>\n")
	b.WriteString(`  <div class="` + cls(tw,
		"max-w-6xl mx-auto grid gap-8 md:grid-cols-3",
		"card-grid") + `">` + "\n")
	for _, it := range items {
		b.WriteString(`    <div class="` + cls(tw,
			"bg-white rounded-xl shadow p-8",
			"card service-card") + `">` + "\n")
		b.WriteString(`      <h3 class="` + cls(tw, "text-xl font-semibold mb-2", "card-title") + `">` + esc(it.Title) + "</h3>\n")
		b.WriteString(`      <p class="` + cls(tw, "text-gray-600", "card-text") + `">` + esc(it.Description) + "</p>\n")
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}

func renderTestimonials(d models.TestimonialsData, tw bool) string {
	title := fallback(d.Title, defaultTestimonialsTitle)
	items := d.Items
	if len(items) == 0 {
		items = defaultTestimonials()
	}

	var b strings.Builder
	b.WriteString(`<section id="yorumlar" class="` + cls(tw,
		"py-20 px-4",
		"testimonials") + `">` + "\n")
	b.WriteString(`  <h2 class="` + cls(tw,
		"text-3xl font-bold text-center mb-12",
		"section-title") + `">` + esc(title) + "</h2>\n")
	b.WriteString(`  <div class="` + cls(tw,
		"max-w-4xl mx-auto grid gap-8 md:grid-cols-2",
		"card-grid") + `">` + "\n")
	for _, it := range items {
		b.WriteString(`    <blockquote class="` + cls(tw,
			"bg-gray-50 rounded-xl p-8",
			"card testimonial-card") + `">` + "\n")
		b.WriteString(`      <p class="` + cls(tw, "italic text-gray-700 mb-4", "quote") + `">&ldquo;` + esc(it.Quote) + "&rdquo;</p>\n")
		b.WriteString(`      <footer class="` + cls(tw, "font-semibold", "quote-author") + `">` + esc(it.Author))
		if it.Role != "" {
			b.WriteString(`<span class="` + cls(tw, "block text-sm text-gray-500 font-normal", "quote-role") + `">` + esc(it.Role) + "</span>")
		}
		b.WriteString("</footer>\n")
		b.WriteString("    </blockquote>\n")
	}
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}

func renderPricing(d models.PricingData, tw bool) string {
	title := fallback(d.Title, defaultPricingTitle)
	plans := d.Plans
	if len(plans) == 0 {
		plans = defaultPricingPlans()
	}

	var b strings.Builder
	b.WriteString(`<section id="fiyatlandirma" class="` + cls(tw,
		"py-20 px-4 bg-gray-50",
		"pricing") + `">` + "\n")
	b.WriteString(`  <h2 class="` + cls(tw,
		"text-3xl font-bold text-center mb-12",
		"section-title") + `">` + esc(title) + "</h2>\n")
	b.WriteString(`  <div class="` + cls(tw,
		"max-w-6xl mx-auto grid gap-8 md:grid-cols-3",
		"card-grid") + `">` + "\n")
	for _, p := range plans {
		cardTW := "bg-white rounded-xl shadow p-8 text-center"
		cardSem := "card pricing-card"
		if p.Highlighted {
			cardTW = "bg-white rounded-xl shadow-lg p-8 text-center ring-2 ring-blue-600"
			cardSem = "card pricing-card highlighted"
		}
		b.WriteString(`    <div class="` + cls(tw, cardTW, cardSem) + `">` + "\n")
		b.WriteString(`      <h3 class="` + cls(tw, "text-xl font-semibold mb-2", "card-title") + `">` + esc(p.Name) + "</h3>\n")
		b.WriteString(`      <div class="` + cls(tw, "text-4xl font-bold mb-1", "price") + `">` + esc(p.Price))
		if p.Period != "" {
			b.WriteString(`<span class="` + cls(tw, "text-base font-normal text-gray-500", "price-period") + `">` + esc(p.Period) + "</span>")
		}
		b.WriteString("</div>\n")
		b.WriteString(`      <ul class="` + cls(tw, "my-6 space-y-2 text-gray-600", "plan-features") + `">` + "\n")
		for _, f := range p.Features {
			b.WriteString("        <li>" + esc(f) + "</li>\n")
		}
		b.WriteString("      </ul>\n")
		if p.CTA != "" {
			b.WriteString(`      <a href="#iletisim" class="` + cls(tw,
				"inline-block px-6 py-2 rounded-lg bg-blue-600 text-white font-semibold hover:bg-blue-700 transition",
				"btn btn-primary") + `">` + esc(p.CTA) + "</a>\n")
		}
		b.WriteString("    </div>\n")
	}
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}

func renderContact(d models.ContactData, tw bool) string {
	title := fallback(d.Title, defaultContactTitle)
	subtitle := fallback(d.Subtitle, defaultContactSubtitle)
	email := fallback(d.Email, defaultContactEmail)
	phone := fallback(d.Phone, defaultContactPhone)
	address := fallback(d.Address, defaultContactAddress)

	var b strings.Builder
	b.WriteString(`<section id="iletisim" class="` + cls(tw,
		"py-20 px-4",
		"contact") + `">` + "\n")
	b.WriteString(`  <div class="` + cls(tw, "max-w-xl mx-auto", "section-inner") + `">` + "\n")
	b.WriteString(`    <h2 class="` + cls(tw,
		"text-3xl font-bold text-center mb-4",
		"section-title") + `">` + esc(title) + "</h2>\n")
	b.WriteString(`    <p class="` + cls(tw,
		"text-center text-gray-600 mb-8",
		"section-text") + `">` + esc(subtitle) + "</p>\n")

	// Contact details.
	b.WriteString(`    <ul class="` + cls(tw, "mb-8 space-y-1 text-center text-gray-600", "contact-info") + `">` + "\n")
	b.WriteString("      <li>" + esc(email) + "</li>\n")
	b.WriteString("      <li>" + esc(phone) + "</li>\n")
	b.WriteString("      <li>" + esc(address) + "</li>\n")
	b.WriteString("    </ul>\n")

	// The form is wired by script.js: client-side validation plus a toast.
	b.WriteString(`    <form id="contact-form" class="` + cls(tw, "space-y-4", "contact-form") + `" novalidate>` + "\n")
	b.WriteString(`      <input type="text" name="name" placeholder="Adınız" class="` + cls(tw,
		"w-full border border-gray-300 rounded-lg px-4 py-3",
		"form-field") + `">` + "\n")
	b.WriteString(`      <input type="email" name="email" placeholder="E-posta adresiniz" class="` + cls(tw,
		"w-full border border-gray-300 rounded-lg px-4 py-3",
		"form-field") + `">` + "\n")
	b.WriteString(`      <textarea name="message" rows="4" placeholder="Mesajınız" class="` + cls(tw,
		"w-full border border-gray-300 rounded-lg px-4 py-3",
		"form-field") + `"></textarea>` + "\n")
	b.WriteString(`      <button type="submit" class="` + cls(tw,
		"w-full py-3 rounded-lg bg-blue-600 text-white font-semibold hover:bg-blue-700 transition",
		"btn btn-primary") + `">Gönder</button>` + "\n")
	b.WriteString("    </form>\n")
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}

func renderFooter(d models.FooterData, tw bool) string {
	text := fallback(d.Text, defaultFooterText)

	var b strings.Builder
	b.WriteString(`<footer class="` + cls(tw,
		"py-10 px-4 bg-gray-900 text-gray-300 text-center",
		"site-footer") + `">` + "\n")
	if len(d.Links) > 0 {
		b.WriteString(`  <ul class="` + cls(tw, "flex justify-center gap-6 mb-4", "footer-links") + `">` + "\n")
		for _, l := range d.Links {
			href := fallback(l.Href, "#")
			b.WriteString(`    <li><a href="` + esc(href) + `" class="` + cls(tw,
				"hover:text-white transition",
				"footer-link") + `">` + esc(l.Label) + "</a></li>\n")
		}
		b.WriteString("  </ul>\n")
	}
	b.WriteString(`  <p class="` + cls(tw, "text-sm", "footer-text") + `">` + esc(text) + "</p>\n")
	b.WriteString("</footer>\n")
	return b.String()
}

func renderGeneric(d models.GenericData, tw bool) string {
	title := fallback(d.Title, defaultGenericTitle)

	var b strings.Builder
	b.WriteString(`<section class="` + cls(tw,
		"py-20 px-4",
		"generic") + `">` + "\n")
	b.WriteString(`  <div class="` + cls(tw, "max-w-3xl mx-auto text-center", "section-inner") + `">` + "\n")
	b.WriteString(`    <h2 class="` + cls(tw,
		"text-3xl font-bold mb-6",
		"section-title") + `">` + esc(title) + "</h2>\n")
	if d.Text != "" {
		b.WriteString(`    <p class="` + cls(tw,
			"text-gray-600 leading-relaxed",
			"section-text") + `">` + esc(d.Text) + "</p>\n")
	}
	b.WriteString("  </div>\n</section>\n")
	return b.String()
}
