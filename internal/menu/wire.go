package menu

import (
	"fmt"
	"strconv"
)

// WireItem is the JSON shape of an item exchanged with builders. For
// cascades the accelerator slot carries the submenu name, which is what the
// existing Tk and GTK builder scripts expect.
type WireItem struct {
	ItemType    string      `json:"itemType"`
	Label       string      `json:"label,omitempty"`
	Accelerator string      `json:"accelerator,omitempty"`
	ItemState   interface{} `json:"itemState,omitempty"`
	ItemDisable *bool       `json:"itemDisable,omitempty"`
	RepostMenu  bool        `json:"repostMenu,omitempty"`
}

// WireMenu is keyed by the decimal position ("1", "2", ...).
type WireMenu map[string]WireItem

// Encode converts an item's resolved snapshot to its wire form.
func (it Item) Encode() WireItem {
	if it.Kind == KindSeparator {
		return WireItem{ItemType: it.Kind.String()}
	}
	snap := it.Snapshot()
	disabled := snap.Disabled
	w := WireItem{
		ItemType:    it.Kind.String(),
		Label:       snap.Label,
		Accelerator: it.Accelerator,
		ItemDisable: &disabled,
		RepostMenu:  it.Repost,
	}
	switch it.Kind {
	case KindCascade:
		w.Accelerator = it.Target
	case KindCheck, KindRadio:
		w.ItemState = snap.State
	case KindABToggle:
		w.ItemState = string(snap.AB)
	}
	return w
}

// Encode converts every item of the menu.
func (m Menu) Encode() WireMenu {
	out := make(WireMenu, len(m))
	for idx, item := range m {
		out[strconv.Itoa(idx)] = item.Encode()
	}
	return out
}

// Entry is a decoded wire item as seen by a builder.
type Entry struct {
	Index       int
	Kind        Kind
	Label       string
	Accelerator string
	Target      string
	State       bool
	AB          ABState
	Disabled    bool
	Repost      bool
}

// Decode validates a wire menu and returns its entries ordered by position.
func (w WireMenu) Decode(name string) ([]Entry, error) {
	entries := make([]Entry, len(w))
	seen := make(map[int]bool, len(w))
	for key, raw := range w {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 1 || idx > len(w) || seen[idx] {
			return nil, fmt.Errorf("menu %q: invalid item key %q", name, key)
		}
		seen[idx] = true
		entry, err := raw.decode()
		if err != nil {
			return nil, fmt.Errorf("menu %q item %d: %w", name, idx, err)
		}
		entry.Index = idx
		entries[idx-1] = entry
	}
	return entries, nil
}

func (w WireItem) decode() (Entry, error) {
	kind, err := ParseKind(w.ItemType)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Kind: kind, Label: w.Label, Repost: w.RepostMenu}
	if w.ItemDisable != nil {
		e.Disabled = *w.ItemDisable
	}
	switch kind {
	case KindCascade:
		if w.Accelerator == "" {
			return Entry{}, fmt.Errorf("cascade %q has no submenu", w.Label)
		}
		e.Target = w.Accelerator
	case KindSeparator:
	default:
		e.Accelerator = w.Accelerator
	}
	switch kind {
	case KindCheck, KindRadio:
		switch v := w.ItemState.(type) {
		case nil:
			e.State = true
		case bool:
			e.State = v
		default:
			return Entry{}, fmt.Errorf("itemState must be boolean, got %T", w.ItemState)
		}
	case KindABToggle:
		switch v := w.ItemState.(type) {
		case nil:
			e.AB = ABOff
		case string:
			ab, err := ParseABState(v)
			if err != nil {
				return Entry{}, err
			}
			e.AB = ab
		default:
			return Entry{}, fmt.Errorf("itemState must be off, a or b, got %T", w.ItemState)
		}
	}
	return e, nil
}
