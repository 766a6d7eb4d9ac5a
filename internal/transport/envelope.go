package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

const (
	// Unset as a coordinate means "use the mouse position"; as a selection
	// index it means the menu was dismissed.
	Unset = -1
	// NoError is the errorvalue a builder reports when nothing went wrong.
	NoError = "errorValue"
	// DefaultLimit bounds cascade depth, counting the root menu.
	DefaultLimit = 10
)

// Envelope is the single JSON argument handed to a builder.
type Envelope struct {
	X           string                   `json:"x"`
	Y           string                   `json:"y"`
	Menu        map[string]menu.WireMenu `json:"menu"`
	MenuName    string                   `json:"menuName"`
	MenuLimit   int                      `json:"menuLimit"`
	MenuPaths   string                   `json:"menuPaths"`
	MenuIndexes string                   `json:"menuIndexes"`
	FontFace    string                   `json:"fontFace"`
	FontSize    string                   `json:"fontSize"`
}

// DecodeEnvelope parses a builder argument, rejecting unknown fields and
// menus that do not decode.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if _, ok := env.Menu[env.MenuName]; !ok {
		return Envelope{}, fmt.Errorf("decode envelope: root menu %q missing", env.MenuName)
	}
	for name, m := range env.Menu {
		if _, err := m.Decode(name); err != nil {
			return Envelope{}, fmt.Errorf("decode envelope: %w", err)
		}
	}
	if env.MenuLimit <= 0 {
		env.MenuLimit = DefaultLimit
	}
	return env, nil
}

// Selection is the builder's answer.
type Selection struct {
	X          int
	Y          int
	MenuName   string
	Index      int
	MenuPath   string
	ErrorValue string
}

// Cancelled reports whether the menu was dismissed without a pick.
func (s Selection) Cancelled() bool {
	return s.Index == Unset
}

type wireSelection struct {
	X          *field `json:"x"`
	Y          *field `json:"y"`
	MenuName   *field `json:"menuname"`
	Index      *field `json:"index"`
	MenuPath   *field `json:"menupath"`
	ErrorValue *field `json:"errorvalue"`
}

// field accepts a JSON string or number. Builders written in different
// toolkits disagree about quoting.
type field string

func (f *field) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = field(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = field(n.String())
	return nil
}

// MarshalSelection renders the one-line answer a builder prints.
func MarshalSelection(s Selection) ([]byte, error) {
	wire := map[string]string{
		"x":          strconv.Itoa(s.X),
		"y":          strconv.Itoa(s.Y),
		"menuname":   s.MenuName,
		"index":      strconv.Itoa(s.Index),
		"menupath":   s.MenuPath,
		"errorvalue": s.ErrorValue,
	}
	return json.Marshal(wire)
}

// ParseSelection validates builder stdout: exactly one non-empty line
// holding every selection field and nothing else.
func ParseSelection(stdout string) (Selection, error) {
	var line string
	for _, l := range strings.Split(strings.ReplaceAll(stdout, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if line != "" {
			return Selection{}, errors.New("builder printed more than one line")
		}
		line = l
	}
	if line == "" {
		return Selection{}, errors.New("builder printed nothing")
	}

	var w wireSelection
	dec := json.NewDecoder(strings.NewReader(line))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return Selection{}, fmt.Errorf("decode selection: %w", err)
	}
	for name, f := range map[string]*field{
		"x": w.X, "y": w.Y, "menuname": w.MenuName, "index": w.Index,
		"menupath": w.MenuPath, "errorvalue": w.ErrorValue,
	} {
		if f == nil {
			return Selection{}, fmt.Errorf("decode selection: missing %q", name)
		}
	}

	index, err := strconv.Atoi(string(*w.Index))
	if err != nil {
		return Selection{}, fmt.Errorf("decode selection: index %q is not a number", *w.Index)
	}
	x, err := coordinate(*w.X)
	if err != nil {
		return Selection{}, fmt.Errorf("decode selection: x: %w", err)
	}
	y, err := coordinate(*w.Y)
	if err != nil {
		return Selection{}, fmt.Errorf("decode selection: y: %w", err)
	}
	return Selection{
		X:          x,
		Y:          y,
		MenuName:   string(*w.MenuName),
		Index:      index,
		MenuPath:   string(*w.MenuPath),
		ErrorValue: string(*w.ErrorValue),
	}, nil
}

func coordinate(f field) (int, error) {
	if f == "" {
		return Unset, nil
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", string(f))
	}
	return int(v), nil
}
