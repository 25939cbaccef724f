// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL- and filesystem-friendly name generation from
// arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// turkishReplacer transliterates Turkish letters before the ASCII filter
// strips them, so "Şirketim" becomes "sirketim" rather than "irketim".
var turkishReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Şirketim 2026" → "sirketim-2026"
func Generate(s string) string {
	result := turkishReplacer.Replace(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Filename derives a filesystem-safe base name from a project name,
// falling back when nothing survives sanitization.
func Filename(name, fallback string) string {
	s := Generate(name)
	if s == "" {
		return fallback
	}
	return s
}
