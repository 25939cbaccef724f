package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for account and project fields.
const (
	maxEmailLen       = 254
	minPasswordLen    = 8
	maxPasswordLen    = 128
	maxDisplayNameLen = 100
	maxProjectNameLen = 200
	maxDescriptionLen = 1_000
	maxContentLen     = 500_000
)

// validateRegister checks registration inputs and returns the first error found.
func validateRegister(email, password, displayName string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "E-posta adresi gereklidir."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "Geçerli bir e-posta adresi girin."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Şifre en az 8 karakter olmalıdır."
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return "Şifre çok uzun (en fazla 128 karakter)."
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return "Görünen ad çok uzun (en fazla 100 karakter)."
	}
	return ""
}

// validateProject checks project inputs and returns the first error found.
func validateProject(name, description, content string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Proje adı gereklidir."
	}
	if utf8.RuneCountInString(name) > maxProjectNameLen {
		return "Proje adı çok uzun (en fazla 200 karakter)."
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "Açıklama çok uzun (en fazla 1.000 karakter)."
	}
	if len(content) > maxContentLen {
		return "Sayfa içeriği çok büyük (en fazla 500.000 karakter)."
	}
	return ""
}
