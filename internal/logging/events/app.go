package events

import "github.com/atomicstack/mpv-context-menu/internal/logging"

type AppTracer struct{}

type HostTracer struct{}

var (
	App  = AppTracer{}
	Host = HostTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Connected(socket string, attempts int) {
	logging.Trace("app.connected", map[string]interface{}{"socket": socket, "attempts": attempts})
}

func (AppTracer) Retry(socket string, attempt int, err error) {
	logging.Trace("app.connect.retry", map[string]interface{}{"socket": socket, "attempt": attempt, "error": errString(err)})
}

func (AppTracer) Bind(key, name string) {
	logging.Trace("app.bind", map[string]interface{}{"key": key, "binding": name})
}

func (AppTracer) Swap(fileLoaded bool) {
	logging.Trace("app.swap", map[string]interface{}{"fileLoaded": fileLoaded})
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (HostTracer) Event(name string) {
	logging.Trace("host.event", map[string]interface{}{"event": name})
}

func (HostTracer) PropertyChange(name string, dirty []string) {
	logging.Trace("host.property", map[string]interface{}{"name": name, "dirty": dirty})
}

func (HostTracer) Message(name string, args []string) {
	logging.Trace("host.message", map[string]interface{}{"name": name, "args": args})
}

func (HostTracer) Observe(id int64, name string) {
	logging.Trace("host.observe", map[string]interface{}{"id": id, "name": name})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
