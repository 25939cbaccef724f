// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// defaults.go holds the fixed Turkish-language fallback content and the
// default style settings. Every component field that the editor left empty
// resolves against these values, so generation never produces a blank
// section.
package generator

import (
	"strings"

	"webbuilder/internal/models"
)

// Default style settings applied per missing field.
const (
	defaultFontHeading = "'Poppins', sans-serif"
	defaultFontBody    = "'Inter', sans-serif"

	defaultColorPrimary    = "#2563eb"
	defaultColorSecondary  = "#1e40af"
	defaultColorAccent     = "#f59e0b"
	defaultColorBackground = "#ffffff"
)

// resolveSettings fills every missing style field with its default. The
// input is never mutated.
func resolveSettings(s models.StyleSettings) models.StyleSettings {
	s.Fonts.Heading = fallback(s.Fonts.Heading, defaultFontHeading)
	s.Fonts.Body = fallback(s.Fonts.Body, defaultFontBody)
	s.Colors.Primary = fallback(s.Colors.Primary, defaultColorPrimary)
	s.Colors.Secondary = fallback(s.Colors.Secondary, defaultColorSecondary)
	s.Colors.Accent = fallback(s.Colors.Accent, defaultColorAccent)
	s.Colors.Background = fallback(s.Colors.Background, defaultColorBackground)
	return s
}

// fallback returns def when s is empty or whitespace.
func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// defaultNavLinks are the header links used when the editor supplied none.
func defaultNavLinks() []models.NavLink {
	return []models.NavLink{
		{Label: "Ana Sayfa", Href: "#hero"},
		{Label: "Hakkımızda", Href: "#hakkimizda"},
		{Label: "Hizmetler", Href: "#hizmetler"},
		{Label: "İletişim", Href: "#iletisim"},
	}
}

// defaultFeatureItems back the features grid when the editor supplied none.
func defaultFeatureItems() []models.FeatureItem {
	return []models.FeatureItem{
		{Icon: "⚡", Title: "Hızlı", Description: "Optimize edilmiş kod ile saniyeler içinde yüklenen sayfalar."},
		{Icon: "🔒", Title: "Güvenli", Description: "Modern web standartlarına uygun, güvenli altyapı."},
		{Icon: "📱", Title: "Mobil Uyumlu", Description: "Her ekran boyutunda kusursuz görünen tasarım."},
	}
}

// defaultServiceItems back the services grid when the editor supplied none.
func defaultServiceItems() []models.ServiceItem {
	return []models.ServiceItem{
		{Title: "Web Tasarım", Description: "Markanıza özel, modern ve etkileyici web siteleri."},
		{Title: "Dijital Pazarlama", Description: "Müşterilerinize ulaşmanızı sağlayan pazarlama çözümleri."},
		{Title: "Danışmanlık", Description: "İşinizi büyütmeniz için uzman desteği."},
	}
}

// defaultTestimonials back the testimonials section when empty.
func defaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{Quote: "Harika bir deneyimdi, kesinlikle tavsiye ederim.", Author: "Ayşe Yılmaz", Role: "Girişimci"},
		{Quote: "Profesyonel ekip, kaliteli hizmet.", Author: "Mehmet Demir", Role: "İşletme Sahibi"},
	}
}

// defaultPricingPlans back the pricing table when empty.
func defaultPricingPlans() []models.PricingPlan {
	return []models.PricingPlan{
		{Name: "Başlangıç", Price: "₺99", Period: "/ay", Features: []string{"1 Web Sitesi", "Temel Destek", "SSL Sertifikası"}, CTA: "Başla"},
		{Name: "Profesyonel", Price: "₺199", Period: "/ay", Features: []string{"5 Web Sitesi", "Öncelikli Destek", "SSL Sertifikası", "Özel Alan Adı"}, CTA: "Başla", Highlighted: true},
		{Name: "Kurumsal", Price: "₺499", Period: "/ay", Features: []string{"Sınırsız Web Sitesi", "7/24 Destek", "SSL Sertifikası", "Özel Alan Adı", "Özel Tasarım"}, CTA: "İletişime Geç"},
	}
}

// Fixed Turkish fallback texts per component field.
const (
	defaultLogo = "Markam"

	defaultHeroTitle    = "Hoş Geldiniz"
	defaultHeroSubtitle = "Hayalinizdeki web sitesi burada başlıyor."
	defaultHeroCTA      = "Hemen Başla"
	defaultHeroCTALink  = "#iletisim"

	defaultFeaturesTitle = "Öne Çıkan Özellikler"

	defaultAboutTitle = "Hakkımızda"
	defaultAboutText  = "Yılların deneyimi ile müşterilerimize en iyi hizmeti sunuyoruz. " +
		"Kalite ve güven bizim için her şeyden önce gelir."

	defaultServicesTitle = "Hizmetlerimiz"

	defaultTestimonialsTitle = "Müşteri Yorumları"

	defaultPricingTitle = "Fiyatlandırma"

	defaultContactTitle    = "İletişim"
	defaultContactSubtitle = "Sorularınız için bize ulaşın."
	defaultContactEmail    = "info@ornek.com"
	defaultContactPhone    = "+90 212 000 00 00"
	defaultContactAddress  = "İstanbul, Türkiye"

	defaultFooterText = "Tüm hakları saklıdır."

	defaultGenericTitle = "Bölüm"
)
