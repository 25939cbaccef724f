// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"fmt"
	"time"

	"webbuilder/internal/models"
)

// buildReadme renders the fixed Markdown readme shipped with every export.
// The date is truncated to the day so generation stays deterministic within
// a calendar day.
func buildReadme(projectName string, fw models.CSSFramework, now time.Time) string {
	return fmt.Sprintf(readmeTemplate, projectName, now.Format("02.01.2006"), fw.Label())
}

const readmeTemplate = `# %s

Bu web sitesi **Web Builder** ile oluşturulmuştur.

- **Oluşturulma Tarihi:** %s
- **CSS Framework:** %s

## Dosyalar

| Dosya | Açıklama |
|---|---|
| index.html | Sitenin ana sayfası |
| styles.css | Site stilleri |
| script.js | Etkileşim ve animasyonlar |
| assets/images/ | Görselleriniz için boş klasör |
| assets/fonts/ | Yazı tipleriniz için boş klasör |

## Yayınlama

1. Tüm dosyaları bir web sunucusuna yükleyin.
2. index.html dosyasının kök dizinde olduğundan emin olun.
3. Siteniz yayında!

Netlify, Vercel veya GitHub Pages gibi ücretsiz servisleri de
kullanabilirsiniz: klasörü olduğu gibi sürükleyip bırakmanız yeterlidir.
`
