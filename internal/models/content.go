// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// ComponentType identifies which section template renders a component.
// The set is closed — anything else degrades to ComponentGeneric.
type ComponentType string

const (
	ComponentHeader       ComponentType = "header"
	ComponentHero         ComponentType = "hero"
	ComponentFeatures     ComponentType = "features"
	ComponentAbout        ComponentType = "about"
	ComponentServices     ComponentType = "services"
	ComponentTestimonials ComponentType = "testimonials"
	ComponentPricing      ComponentType = "pricing"
	ComponentContact      ComponentType = "contact"
	ComponentFooter       ComponentType = "footer"
	ComponentGeneric      ComponentType = "generic"
)

// Known reports whether t is one of the closed component types.
func (t ComponentType) Known() bool {
	switch t {
	case ComponentHeader, ComponentHero, ComponentFeatures, ComponentAbout,
		ComponentServices, ComponentTestimonials, ComponentPricing,
		ComponentContact, ComponentFooter, ComponentGeneric:
		return true
	}
	return false
}

// Component is one section of a page. Data carries the variant payload as
// raw JSON; each variant decodes only the fields it understands and ignores
// the rest. Components render in slice order, top to bottom.
type Component struct {
	Type ComponentType   `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// PageContent is the full content tree of a project: an ordered component
// sequence plus the style settings applied to the whole page. An empty
// component list is valid — the generator falls back to the default layout.
type PageContent struct {
	Components []Component   `json:"components"`
	Settings   StyleSettings `json:"settings"`
}

// StyleSettings holds the page-wide design choices picked in the editor.
// Every field is optional; the generator substitutes defaults per field.
type StyleSettings struct {
	Fonts      FontSettings  `json:"fonts"`
	Colors     ColorSettings `json:"colors"`
	Responsive bool          `json:"responsive"`
}

// FontSettings names the font families for headings and body text.
type FontSettings struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
}

// ColorSettings holds the page color palette as CSS color values.
type ColorSettings struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
}

// NavLink is a single navigation entry used by header and footer variants.
type NavLink struct {
	Label string `json:"label,omitempty"`
	Href  string `json:"href,omitempty"`
}

// HeaderData is the payload of a header component.
type HeaderData struct {
	Logo  string    `json:"logo,omitempty"`
	Links []NavLink `json:"links,omitempty"`
}

// HeroData is the payload of a hero component.
type HeroData struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	CTA      string `json:"cta,omitempty"`
	CTALink  string `json:"ctaLink,omitempty"`
}

// FeatureItem is one entry in a features grid.
type FeatureItem struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FeaturesData is the payload of a features component.
type FeaturesData struct {
	Title string        `json:"title,omitempty"`
	Items []FeatureItem `json:"items,omitempty"`
}

// AboutData is the payload of an about component.
type AboutData struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// ServiceItem is one entry in a services grid.
type ServiceItem struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// ServicesData is the payload of a services component.
type ServicesData struct {
	Title string        `json:"title,omitempty"`
	Items []ServiceItem `json:"items,omitempty"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	Quote  string `json:"quote,omitempty"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`
}

// TestimonialsData is the payload of a testimonials component.
type TestimonialsData struct {
	Title string        `json:"title,omitempty"`
	Items []Testimonial `json:"items,omitempty"`
}

// PricingPlan is one column in a pricing table.
type PricingPlan struct {
	Name        string   `json:"name,omitempty"`
	Price       string   `json:"price,omitempty"`
	Period      string   `json:"period,omitempty"`
	Features    []string `json:"features,omitempty"`
	CTA         string   `json:"cta,omitempty"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

// PricingData is the payload of a pricing component.
type PricingData struct {
	Title string        `json:"title,omitempty"`
	Plans []PricingPlan `json:"plans,omitempty"`
}

// ContactData is the payload of a contact component.
type ContactData struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// FooterData is the payload of a footer component.
type FooterData struct {
	Text  string    `json:"text,omitempty"`
	Links []NavLink `json:"links,omitempty"`
}

// GenericData is the payload of a generic (free-form) component, and the
// fallback interpretation for unknown component types.
type GenericData struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

// decode unmarshals the raw payload into v. A missing or malformed payload
// leaves v zero-valued so field defaults apply downstream.
func (c Component) decode(v any) {
	if len(c.Data) == 0 {
		return
	}
	_ = json.Unmarshal(c.Data, v)
}

// Header decodes the component payload as header data.
func (c Component) Header() HeaderData {
	var d HeaderData
	c.decode(&d)
	return d
}

// Hero decodes the component payload as hero data.
func (c Component) Hero() HeroData {
	var d HeroData
	c.decode(&d)
	return d
}

// Features decodes the component payload as features data.
func (c Component) Features() FeaturesData {
	var d FeaturesData
	c.decode(&d)
	return d
}

// About decodes the component payload as about data.
func (c Component) About() AboutData {
	var d AboutData
	c.decode(&d)
	return d
}

// Services decodes the component payload as services data.
func (c Component) Services() ServicesData {
	var d ServicesData
	c.decode(&d)
	return d
}

// Testimonials decodes the component payload as testimonials data.
func (c Component) Testimonials() TestimonialsData {
	var d TestimonialsData
	c.decode(&d)
	return d
}

// Pricing decodes the component payload as pricing data.
func (c Component) Pricing() PricingData {
	var d PricingData
	c.decode(&d)
	return d
}

// Contact decodes the component payload as contact data.
func (c Component) Contact() ContactData {
	var d ContactData
	c.decode(&d)
	return d
}

// Footer decodes the component payload as footer data.
func (c Component) Footer() FooterData {
	var d FooterData
	c.decode(&d)
	return d
}

// Generic decodes the component payload as generic data.
func (c Component) Generic() GenericData {
	var d GenericData
	c.decode(&d)
	return d
}
