package menu

import (
	"fmt"
	"sort"
)

// Menu maps 1-based positions to items.
type Menu map[int]Item

// List builds a menu from items in order.
func List(items ...Item) Menu {
	m := make(Menu, len(items))
	for i, item := range items {
		m[i+1] = item
	}
	return m
}

// Append adds items after the highest position, so an existing entry is
// never overwritten even when the positions have a gap.
func (m Menu) Append(items ...Item) Menu {
	if m == nil {
		m = make(Menu, len(items))
	}
	last := 0
	for k := range m {
		if k > last {
			last = k
		}
	}
	for _, item := range items {
		last++
		m[last] = item
	}
	return m
}

// Len returns the number of items.
func (m Menu) Len() int {
	return len(m)
}

// Items returns the items ordered by position. Validate first; positions
// beyond a gap are still returned in key order.
func (m Menu) Items() []Item {
	keys := m.keys()
	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (m Menu) keys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// GapError reports a menu whose positions are not exactly 1..N.
type GapError struct {
	Menu  string
	Index int
}

func (e *GapError) Error() string {
	return fmt.Sprintf("menu %q with index %d is undefined", e.Menu, e.Index)
}

// TargetError reports a cascade whose target menu is not in the set.
type TargetError struct {
	Menu   string
	Index  int
	Target string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("menu %q index %d opens undefined menu %q", e.Menu, e.Index, e.Target)
}

// StructureMessage is shown on screen when a menu set fails validation.
const StructureMessage = "Menu structure check failed!"

// Validate checks that positions form the contiguous sequence 1..N and that
// each cascade names a target.
func (m Menu) Validate(name string) error {
	for i := 1; i <= len(m); i++ {
		item, ok := m[i]
		if !ok {
			return &GapError{Menu: name, Index: i}
		}
		if item.Kind == KindCascade && item.Target == "" {
			return fmt.Errorf("menu %q index %d: cascade without target", name, i)
		}
	}
	return nil
}

// Clone copies the menu map. Items are values, so the copy is independent.
func (m Menu) Clone() Menu {
	if m == nil {
		return nil
	}
	dup := make(Menu, len(m))
	for k, v := range m {
		dup[k] = v
	}
	return dup
}

// Generator produces a menu from runtime state.
type Generator func() Menu

// Set is the named collection of menus presented by the controller.
type Set struct {
	// FileLoaded marks the full variant shown while media is loaded.
	FileLoaded bool
	Menus      map[string]Menu
	Generators map[string]Generator
}

// NewSet returns an empty set.
func NewSet(fileLoaded bool) *Set {
	return &Set{
		FileLoaded: fileLoaded,
		Menus:      make(map[string]Menu),
		Generators: make(map[string]Generator),
	}
}

// Add registers a static menu.
func (s *Set) Add(name string, m Menu) *Set {
	s.Menus[name] = m
	return s
}

// Generate registers a generated menu.
func (s *Set) Generate(name string, gen Generator) *Set {
	s.Generators[name] = gen
	return s
}

// Names lists every menu name, static or generated, sorted.
func (s *Set) Names() []string {
	seen := make(map[string]struct{}, len(s.Menus)+len(s.Generators))
	for name := range s.Menus {
		seen[name] = struct{}{}
	}
	for name := range s.Generators {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the item at position index of the named menu.
func (s *Set) Lookup(name string, index int) (Item, bool) {
	if s == nil {
		return Item{}, false
	}
	m, ok := s.Menus[name]
	if !ok {
		return Item{}, false
	}
	item, ok := m[index]
	return item, ok
}

// Validate checks every static menu, then that each cascade opens a menu
// the set defines, static or generated.
func (s *Set) Validate() error {
	names := s.Names()
	for _, name := range names {
		m, ok := s.Menus[name]
		if !ok {
			continue
		}
		if err := m.Validate(name); err != nil {
			return err
		}
	}
	for _, name := range names {
		m := s.Menus[name]
		for _, k := range m.keys() {
			item := m[k]
			if item.Kind != KindCascade {
				continue
			}
			if !s.defines(item.Target) {
				return &TargetError{Menu: name, Index: k, Target: item.Target}
			}
		}
	}
	return nil
}

func (s *Set) defines(name string) bool {
	if _, ok := s.Menus[name]; ok {
		return true
	}
	_, ok := s.Generators[name]
	return ok
}

// Clone copies the set's maps so snapshots can be staged without touching the
// original.
func (s *Set) Clone() *Set {
	dup := NewSet(s.FileLoaded)
	for name, m := range s.Menus {
		dup.Menus[name] = m.Clone()
	}
	for name, gen := range s.Generators {
		dup.Generators[name] = gen
	}
	return dup
}
