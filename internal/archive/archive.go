// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package archive packages a generated site bundle into a streamed zip.
// The entry list is fixed: the three artifacts, the readme, and two empty
// asset directory markers. Compression is pinned to the maximum level so
// archive sizes stay reproducible across exports of identical bundles.
package archive

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"

	"webbuilder/internal/generator"
	"webbuilder/internal/slug"
)

// fallbackName is used when a project name sanitizes to nothing.
const fallbackName = "website"

// Filename returns the download name of a project's export archive.
func Filename(projectName string) string {
	return slug.Filename(projectName, fallbackName) + ".zip"
}

// Write streams the bundle as a zip archive to w. Entries appear in a fixed
// order; a write error aborts the archive mid-stream — by then the export is
// already committed, so the caller must not retry the charge.
func Write(w io.Writer, bundle generator.Bundle) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	entries := []struct {
		name string
		body string
	}{
		{"index.html", bundle.HTML},
		{"styles.css", bundle.CSS},
		{"script.js", bundle.JS},
		{"README.md", bundle.Readme},
		{"assets/images/.gitkeep", ""},
		{"assets/fonts/.gitkeep", ""},
	}

	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("archive create %s: %w", e.name, err)
		}
		if _, err := io.WriteString(f, e.body); err != nil {
			return fmt.Errorf("archive write %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("archive close: %w", err)
	}
	return nil
}
