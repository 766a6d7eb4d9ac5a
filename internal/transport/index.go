package transport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

// ErrDepthExceeded means cascades nest deeper than the menu limit.
var ErrDepthExceeded = errors.New("menu depth limit exceeded")

// IndexTable maps a submenu name to its 0-based position in its parent.
type IndexTable map[string]int

// Walk is the result of the pre-pass over the menus reachable from a root.
type Walk struct {
	Indexes IndexTable
	// Reachable lists menu names in visit order, root first.
	Reachable []string
}

// DepthMessage is shown when a menu exceeds limit.
func DepthMessage(limit int) string {
	return fmt.Sprintf("Too many menu levels. No more than %d menu levels total.", limit)
}

// Index walks set from root, recording where each cascade target sits in
// its parent. Items of a menu at a level beyond limit fail the walk with
// ErrDepthExceeded; the root is level 1.
func Index(set *menu.Set, root string, limit int) (Walk, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	w := Walk{Indexes: make(IndexTable)}
	seen := make(map[string]bool)
	var visit func(name string, level int) error
	visit = func(name string, level int) error {
		m, ok := set.Menus[name]
		if !ok {
			return fmt.Errorf("menu %q is not defined", name)
		}
		if !seen[name] {
			seen[name] = true
			w.Reachable = append(w.Reachable, name)
		}
		for i := 1; i <= m.Len(); i++ {
			if level > limit {
				return fmt.Errorf("%w: %s", ErrDepthExceeded, DepthMessage(limit))
			}
			item, ok := m[i]
			if !ok || item.Kind != menu.KindCascade {
				continue
			}
			w.Indexes[item.Target] = i - 1
			if err := visit(item.Target, level+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root, 1); err != nil {
		return Walk{}, err
	}
	return w, nil
}

// RepostPaths derives the builder arguments that reopen the cascade leading
// to the picked item. menupath is the dotted path reported by the builder,
// e.g. ".context_menu.play_menu.speed_menu". For a path of depth D, paths
// holds the ancestors excluding the leaf and indexes holds D-1 positions.
func RepostPaths(menupath string, table IndexTable) (paths, indexes string, err error) {
	parts := strings.Split(menupath, ".")
	parts = parts[1:]
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return "", "", nil
	}

	var pathList, indexList []string
	for i := range parts {
		joined := "." + strings.Join(parts[:i+1], ".")
		if i == 0 || i < len(parts)-1 {
			pathList = append(pathList, joined)
		}
		if i > 0 {
			idx, ok := table[parts[i]]
			if !ok {
				return "", "", fmt.Errorf("repost: menu %q not in index table", parts[i])
			}
			indexList = append(indexList, strconv.Itoa(idx))
		}
	}
	return strings.Join(pathList, "?"), strings.Join(indexList, "?"), nil
}
