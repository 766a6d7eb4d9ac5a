package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/atomicstack/mpv-context-menu/internal/proc"
)

// Runner replays scripted results keyed by the first argument and records
// every request.
type Runner struct {
	mu       sync.Mutex
	Results  map[string][]proc.Result
	Requests []proc.Request
	// Hook runs before a result is returned; tests use it to observe ctx.
	Hook func(ctx context.Context, req proc.Request)
}

// NewRunner returns an empty scripted runner.
func NewRunner() *Runner {
	return &Runner{Results: make(map[string][]proc.Result)}
}

// Script queues results for commands whose program is name.
func (r *Runner) Script(name string, results ...proc.Result) *Runner {
	r.mu.Lock()
	r.Results[name] = append(r.Results[name], results...)
	r.mu.Unlock()
	return r
}

// Stdout queues a successful result printing out.
func (r *Runner) Stdout(name, out string) *Runner {
	return r.Script(name, proc.Result{Stdout: out})
}

func (r *Runner) Run(ctx context.Context, req proc.Request) proc.Result {
	r.mu.Lock()
	r.Requests = append(r.Requests, req)
	hook := r.Hook
	r.mu.Unlock()
	if hook != nil {
		hook(ctx, req)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	name := program(req.Args)
	queue := r.Results[name]
	if len(queue) == 0 {
		return proc.Result{Status: proc.StatusInitFailed}
	}
	res := queue[0]
	r.Results[name] = queue[1:]
	return res
}

// Calls returns the argv of each request joined by spaces.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Requests))
	for i, req := range r.Requests {
		out[i] = strings.Join(req.Args, " ")
	}
	return out
}

// program skips a flatpak-spawn prefix so scripts match either way.
func program(args []string) string {
	if len(args) > 2 && args[0] == "flatpak-spawn" && args[1] == "--host" {
		return args[2]
	}
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

var _ proc.Runner = (*Runner)(nil)
