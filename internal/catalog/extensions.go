package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

// Extensions are user-defined items appended to the built-in menus. Entries
// under Loaded apply to the full set, entries under NoFile to the fallback
// set. A name that does not exist yet defines a new menu. Generated menus
// cannot be extended.
type Extensions struct {
	Loaded map[string][]ExtItem `yaml:"loaded"`
	NoFile map[string][]ExtItem `yaml:"no_file"`
}

// ExtItem is one item in the extension file.
type ExtItem struct {
	Type        string `yaml:"type"`
	Label       string `yaml:"label"`
	Accelerator string `yaml:"accelerator"`
	Target      string `yaml:"target"`
	Command     string `yaml:"command"`
	// State names a property whose truthiness drives check and radio items.
	State    string `yaml:"state"`
	Disabled bool   `yaml:"disabled"`
	Repost   bool   `yaml:"repost"`
}

var generatedMenus = map[string]struct{}{
	"edition_menu":   {},
	"chapter_menu":   {},
	"vidtrack_menu":  {},
	"audtrack_menu":  {},
	"subtrack_menu":  {},
	"channel_layout": {},
}

// LoadExtensions reads the extension file at path. An empty path returns nil.
func LoadExtensions(path string) (*Extensions, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu extensions: %w", err)
	}
	ext, err := ParseExtensions(data)
	if err != nil {
		return nil, fmt.Errorf("menu extensions %s: %w", path, err)
	}
	return ext, nil
}

// ParseExtensions decodes and checks an extension document.
func ParseExtensions(data []byte) (*Extensions, error) {
	var ext Extensions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ext); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for _, src := range []map[string][]ExtItem{ext.Loaded, ext.NoFile} {
		if _, err := convertAll(src, func(string) bool { return false }); err != nil {
			return nil, err
		}
	}
	return &ext, nil
}

func convertAll(src map[string][]ExtItem, state func(string) bool) (map[string][]menu.Item, error) {
	out := make(map[string][]menu.Item, len(src))
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := generatedMenus[name]; ok {
			return nil, fmt.Errorf("menu %q is generated and cannot be extended", name)
		}
		for i, raw := range src[name] {
			item, err := raw.convert(state)
			if err != nil {
				return nil, fmt.Errorf("menu %q item %d: %w", name, i+1, err)
			}
			out[name] = append(out[name], item)
		}
	}
	return out, nil
}

func (e ExtItem) convert(state func(string) bool) (menu.Item, error) {
	kind, err := menu.ParseKind(e.Type)
	if err != nil {
		return menu.Item{}, err
	}
	if kind == menu.KindSeparator {
		return menu.Separator(), nil
	}
	if e.Label == "" {
		return menu.Item{}, errors.New("missing label")
	}
	var item menu.Item
	switch kind {
	case menu.KindCascade:
		if e.Target == "" {
			return menu.Item{}, errors.New("cascade needs a target")
		}
		item = menu.Cascade(e.Label, e.Target)
	case menu.KindCommand:
		item = menu.Cmd(e.Label, e.Accelerator, menu.Run(e.Command))
	case menu.KindCheck, menu.KindRadio:
		checked := menu.Bool(false)
		if prop := e.State; prop != "" {
			checked = menu.When(func() bool { return state(prop) })
		}
		if kind == menu.KindCheck {
			item = menu.Check(e.Label, e.Accelerator, menu.Run(e.Command), checked)
		} else {
			item = menu.Radio(e.Label, e.Accelerator, menu.Run(e.Command), checked)
		}
	default:
		return menu.Item{}, fmt.Errorf("%s items cannot be defined in extensions", kind)
	}
	if e.Disabled {
		item = item.Disable()
	}
	if e.Repost {
		item = item.Reposting()
	}
	return item, nil
}

// applyExtensions appends extension items to set.
func (c *Catalog) applyExtensions(set *menu.Set) {
	if c.ext == nil {
		return
	}
	src := c.ext.NoFile
	if set.FileLoaded {
		src = c.ext.Loaded
	}
	items, err := convertAll(src, c.boolProp)
	if err != nil {
		logging.Error(err)
		return
	}
	for name, extra := range items {
		set.Menus[name] = set.Menus[name].Append(extra...)
	}
}
