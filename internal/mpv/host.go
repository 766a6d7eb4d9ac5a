// Package mpv talks to a running mpv instance over its JSON IPC socket.
package mpv

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// Host is the subset of mpv the controller drives. *Client implements it;
// tests substitute a recorder.
type Host interface {
	// Command runs a command given as separate arguments.
	Command(ctx context.Context, args ...string) error
	// CommandString runs a command line parsed like an input.conf entry.
	CommandString(ctx context.Context, line string) error
	// Property reads a property. Unavailable properties return
	// ErrPropertyUnavailable.
	Property(ctx context.Context, name string) (interface{}, error)
	// ShowText displays an on-screen message.
	ShowText(ctx context.Context, text string, d time.Duration) error
}

// ErrPropertyUnavailable mirrors mpv's "property unavailable" reply.
var ErrPropertyUnavailable = errors.New("property unavailable")

// Bool converts a decoded property value.
func Bool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "yes" || t == "true"
	}
	return false
}

// Float converts a decoded property value.
func Float(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(t, 64)
		return f
	}
	return 0
}

// Int converts a decoded property value, truncating fractions.
func Int(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	}
	return int(Float(v))
}

// String converts a decoded property value. Numbers use mpv's shortest
// representation.
func String(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "yes"
		}
		return "no"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// Map converts a decoded node map.
func Map(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

// List converts a decoded node array.
func List(v interface{}) []interface{} {
	l, _ := v.([]interface{})
	return l
}

// PropertyOr reads name and falls back to def on any error.
func PropertyOr(ctx context.Context, h Host, name string, def interface{}) interface{} {
	v, err := h.Property(ctx, name)
	if err != nil || v == nil {
		return def
	}
	return v
}
