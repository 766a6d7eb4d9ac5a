package ui

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/theme"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
	uistate "github.com/atomicstack/mpv-context-menu/internal/ui/state"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "context menu"
)

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Entry) *level {
	return uistate.NewLevel(id, title, items)
}

// Options tune the terminal builder.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// Monochrome drops colours and marks the selection with reverse video.
	Monochrome bool
}

// Model implements the Bubble Tea model for the terminal menu builder.
type Model struct {
	menus             map[string][]menu.Entry
	limit             int
	x, y              int
	stack             []*level
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	filterCursor      cursor.Model
	filterCursorDirty bool
	rootTitle         string
	styles            *theme.Styles

	result transport.Selection
	done   bool

	handlers map[reflect.Type]msgHandler
}

// NewModel decodes the envelope menus and opens the root, then reopens any
// cascades recorded in the envelope's menu indexes.
func NewModel(env transport.Envelope, opts Options) (*Model, error) {
	menus := make(map[string][]menu.Entry, len(env.Menu))
	for name, wire := range env.Menu {
		entries, err := wire.Decode(name)
		if err != nil {
			return nil, err
		}
		menus[name] = entries
	}
	rootItems, ok := menus[env.MenuName]
	if !ok {
		return nil, fmt.Errorf("root menu %q missing", env.MenuName)
	}
	limit := env.MenuLimit
	if limit <= 0 {
		limit = transport.DefaultLimit
	}
	root := newLevel(env.MenuName, defaultRootTitle, rootItems)
	m := &Model{
		menus:      menus,
		limit:      limit,
		x:          coordinate(env.X),
		y:          coordinate(env.Y),
		stack:      []*level{root},
		showFooter: opts.ShowFooter,
		rootTitle:  defaultRootTitle,
		styles:     theme.Default(),
	}
	if opts.Monochrome {
		m.styles = theme.Monochrome()
	}
	m.result = m.selection(env.MenuName, transport.Unset, "")
	m.syncViewport(root)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if m.styles.Cursor != nil {
		c.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Filter != nil {
		c.TextStyle = m.styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.reopen(env.MenuIndexes)
	m.registerHandlers()
	return m, nil
}

// coordinate parses an envelope coordinate; anything that is not a number
// is reported back as unset.
func coordinate(raw string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return transport.Unset
	}
	return int(v)
}

func (m *Model) selection(menuName string, index int, menuPath string) transport.Selection {
	return transport.Selection{
		X:          m.x,
		Y:          m.y,
		MenuName:   menuName,
		Index:      index,
		MenuPath:   menuPath,
		ErrorValue: transport.NoError,
	}
}

// Selection returns the answer the builder prints once the program exits.
func (m *Model) Selection() transport.Selection {
	return m.result
}

// Done reports whether an item was picked or the menu dismissed.
func (m *Model) Done() bool {
	return m.done
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
