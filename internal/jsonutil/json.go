// Package jsonutil holds the JSON encoder settings shared by json writers.
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that leaves <, > and & unescaped.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// EncodePretty writes v as two-space indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
