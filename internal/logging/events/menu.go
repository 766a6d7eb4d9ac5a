package events

import "github.com/atomicstack/mpv-context-menu/internal/logging"

type MenuTracer struct{}

type DialogTracer struct{}

var (
	Menu   = MenuTracer{}
	Dialog = DialogTracer{}
)

func (MenuTracer) Reconcile(dirty []string, err error) {
	logging.Trace("menu.reconcile", map[string]interface{}{"dirty": dirty, "error": errString(err)})
}

func (MenuTracer) Present(root, builder string, x, y string, reachable int) {
	logging.Trace("menu.present", map[string]interface{}{
		"root":      root,
		"builder":   builder,
		"x":         x,
		"y":         y,
		"reachable": reachable,
	})
}

func (MenuTracer) Exit(builder string, status int, err error) {
	logging.Trace("menu.exit", map[string]interface{}{"builder": builder, "status": status, "error": errString(err)})
}

func (MenuTracer) Select(menuName string, index int, path string) {
	logging.Trace("menu.select", map[string]interface{}{"menu": menuName, "index": index, "path": path})
}

func (MenuTracer) Cancel(root string) {
	logging.Trace("menu.cancel", map[string]interface{}{"root": root})
}

func (MenuTracer) Repost(paths, indexes string) {
	logging.Trace("menu.repost", map[string]interface{}{"paths": paths, "indexes": indexes})
}

func (DialogTracer) Launch(kind, mode, picker string) {
	logging.Trace("dialog.launch", map[string]interface{}{"kind": kind, "mode": mode, "picker": picker})
}

func (DialogTracer) Abort(kind string, status int) {
	logging.Trace("dialog.abort", map[string]interface{}{"kind": kind, "status": status})
}

func (DialogTracer) Result(kind string, paths int) {
	logging.Trace("dialog.result", map[string]interface{}{"kind": kind, "paths": paths})
}
