package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/mpv-context-menu/internal/mpv"
)

// OSD is one recorded show-text call.
type OSD struct {
	Text     string
	Duration time.Duration
}

// FakeHost records everything sent to it and serves properties from a map.
type FakeHost struct {
	mu         sync.Mutex
	Properties map[string]interface{}
	Commands   [][]string
	Lines      []string
	Texts      []OSD
	// Fail makes the named command (first argument) return an error.
	Fail map[string]error
}

// NewFakeHost returns a host with the given properties.
func NewFakeHost(props map[string]interface{}) *FakeHost {
	if props == nil {
		props = make(map[string]interface{})
	}
	return &FakeHost{Properties: props, Fail: make(map[string]error)}
}

func (h *FakeHost) Command(_ context.Context, args ...string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Commands = append(h.Commands, append([]string(nil), args...))
	if len(args) > 0 {
		if err := h.Fail[args[0]]; err != nil {
			return err
		}
	}
	return nil
}

func (h *FakeHost) CommandString(_ context.Context, line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Lines = append(h.Lines, line)
	if fields := strings.Fields(line); len(fields) > 0 {
		if err := h.Fail[fields[0]]; err != nil {
			return err
		}
	}
	return nil
}

func (h *FakeHost) Property(_ context.Context, name string) (interface{}, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.Properties[name]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", name, mpv.ErrPropertyUnavailable)
	}
	return v, nil
}

func (h *FakeHost) ShowText(_ context.Context, text string, d time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Texts = append(h.Texts, OSD{Text: text, Duration: d})
	return nil
}

// Set changes a property.
func (h *FakeHost) Set(name string, v interface{}) {
	h.mu.Lock()
	h.Properties[name] = v
	h.mu.Unlock()
}

// Shown returns the recorded on-screen texts.
func (h *FakeHost) Shown() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.Texts))
	for i, t := range h.Texts {
		out[i] = t.Text
	}
	return out
}

// Sent returns the recorded commandv calls joined by spaces.
func (h *FakeHost) Sent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.Commands))
	for i, c := range h.Commands {
		out[i] = strings.Join(c, " ")
	}
	return out
}

// SentLines returns the recorded command lines.
func (h *FakeHost) SentLines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.Lines...)
}

var _ mpv.Host = (*FakeHost)(nil)
