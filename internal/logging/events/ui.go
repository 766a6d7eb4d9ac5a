package events

import "github.com/atomicstack/mpv-context-menu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) MenuEnter(menuName string, index int, label, filter string) {
	logging.Trace("ui.enter", map[string]interface{}{
		"menu":   menuName,
		"index":  index,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(menuName string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"menu": menuName, "cursor": cursor})
}

func (UITracer) Pick(menuName string, index int) {
	logging.Trace("ui.pick", map[string]interface{}{"menu": menuName, "index": index})
}

func (UITracer) Dismiss(menuName string) {
	logging.Trace("ui.dismiss", map[string]interface{}{"menu": menuName})
}

func (FilterTracer) Cleared(menuName string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": menuName})
}

func (FilterTracer) WordBackspace(menuName, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"menu": menuName, "filter": filter})
}

func (FilterTracer) Append(menuName, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": menuName, "filter": filter})
}

func (FilterTracer) Backspace(menuName, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": menuName, "filter": filter})
}

func (CommandTracer) Line(line string) {
	logging.Trace("command.line", map[string]interface{}{"line": line})
}

func (CommandTracer) Binding(name string) {
	logging.Trace("command.binding", map[string]interface{}{"name": name})
}

func (CommandTracer) Callback(label string) {
	logging.Trace("command.callback", map[string]interface{}{"label": label})
}

func (FilterTracer) Cursor(menuName string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"menu": menuName, "pos": pos})
}
