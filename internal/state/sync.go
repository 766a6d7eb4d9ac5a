// Package state keeps the active menu set consistent with host properties.
//
// Host property changes only mark menus dirty. Work happens lazily in
// Reconcile, right before a menu is presented.
package state

import (
	"errors"
	"sort"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/notice"
)

// WatchList maps a host property to the menus that depend on it.
type WatchList map[string][]string

// Clone copies the list so callers cannot mutate a synchronizer's copy.
func (w WatchList) Clone() WatchList {
	dup := make(WatchList, len(w))
	for prop, names := range w {
		dup[prop] = append([]string(nil), names...)
	}
	return dup
}

// Properties returns the watched property names, sorted.
func (w WatchList) Properties() []string {
	props := make([]string, 0, len(w))
	for prop := range w {
		props = append(props, prop)
	}
	sort.Strings(props)
	return props
}

// ErrNoSet is returned by Reconcile before any set was loaded.
var ErrNoSet = errors.New("no menu set loaded")

// StructureMessage is shown when a menu fails validation.
const StructureMessage = menu.StructureMessage

// Synchronizer owns the active menu set and its dirty set. It is not safe
// for concurrent use; the application only touches it from the event loop.
type Synchronizer struct {
	watch  WatchList
	base   string
	active *menu.Set
	dirty  map[string]struct{}
}

// New returns a synchronizer using watch and treating base as the menu whose
// dirtiness triggers a sweep of every menu's dynamic fields.
func New(watch WatchList, base string) *Synchronizer {
	return &Synchronizer{
		watch: watch.Clone(),
		base:  base,
		dirty: make(map[string]struct{}),
	}
}

// Watch returns a copy of the watch list.
func (s *Synchronizer) Watch() WatchList {
	return s.watch.Clone()
}

// Active returns the last committed set, or nil.
func (s *Synchronizer) Active() *menu.Set {
	return s.active
}

// Load swaps the active set. Generated menus without a snapshot and the base
// menu become dirty; a file-loaded set marks everything dirty since derived
// values do not carry across files.
func (s *Synchronizer) Load(set *menu.Set) {
	s.active = set
	if set == nil {
		return
	}
	if set.FileLoaded {
		s.MarkAllDirty()
		return
	}
	for name := range set.Generators {
		if _, ok := set.Menus[name]; !ok {
			s.dirty[name] = struct{}{}
		}
	}
	s.dirty[s.base] = struct{}{}
}

// PropertyChanged marks every menu depending on prop. It returns the names
// it marked.
func (s *Synchronizer) PropertyChanged(prop string) []string {
	names := s.watch[prop]
	for _, name := range names {
		s.dirty[name] = struct{}{}
	}
	return append([]string(nil), names...)
}

// MarkDirty adds names to the dirty set.
func (s *Synchronizer) MarkDirty(names ...string) {
	for _, name := range names {
		s.dirty[name] = struct{}{}
	}
}

// MarkAllDirty marks every menu of the active set plus the base.
func (s *Synchronizer) MarkAllDirty() {
	if s.active != nil {
		for _, name := range s.active.Names() {
			s.dirty[name] = struct{}{}
		}
	}
	s.dirty[s.base] = struct{}{}
}

// Dirty lists the pending names, sorted.
func (s *Synchronizer) Dirty() []string {
	names := make([]string, 0, len(s.dirty))
	for name := range s.dirty {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reconcile regenerates dirty generated menus, resolves dynamic fields and
// validates every menu. On failure nothing is committed: the previous
// snapshots and the dirty set are left untouched.
func (s *Synchronizer) Reconcile() (*menu.Set, error) {
	if s.active == nil {
		return nil, ErrNoSet
	}
	if len(s.dirty) == 0 {
		return s.active, nil
	}

	staged := s.active.Clone()
	processed := make([]string, 0, len(s.dirty))
	_, sweep := s.dirty[s.base]

	for _, name := range s.Dirty() {
		if gen, ok := staged.Generators[name]; ok {
			staged.Menus[name] = resolveMenu(gen())
			processed = append(processed, name)
			continue
		}
		m, ok := staged.Menus[name]
		if !ok {
			// Not part of this set; stays pending for the next one.
			continue
		}
		if !sweep {
			staged.Menus[name] = resolveMenu(m)
		}
		processed = append(processed, name)
	}

	if sweep {
		for name, m := range staged.Menus {
			staged.Menus[name] = resolveMenu(m)
		}
	}

	if err := staged.Validate(); err != nil {
		return nil, notice.Wrap(err, StructureMessage)
	}

	s.active = staged
	for _, name := range processed {
		delete(s.dirty, name)
	}
	return staged, nil
}

func resolveMenu(m menu.Menu) menu.Menu {
	out := make(menu.Menu, len(m))
	for idx, item := range m {
		out[idx] = item.Resolve()
	}
	return out
}
