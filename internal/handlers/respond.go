// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handler groups for the webbuilder
// JSON API. Every response uses the same envelope: {"success": bool,
// "message": optional string, "data": optional payload}.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxBodyBytes caps JSON request bodies. Project content is the largest
// payload; 1 MiB leaves generous headroom over the content size limit.
const maxBodyBytes = 1 << 20

// envelope is the uniform JSON response shape.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondData writes a success envelope with a payload.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondMessage writes a success envelope with a message and optional payload.
func respondMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondInternal logs the error and returns a generic 500. The error
// detail never reaches the client.
func respondInternal(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	respondError(w, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu.")
}

// decodeJSON reads a size-limited JSON body into dst. Unknown fields are
// rejected so typos surface instead of silently dropping data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode request: trailing data")
	}
	return nil
}
