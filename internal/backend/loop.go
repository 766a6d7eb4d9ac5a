package backend

import (
	"context"
	"sync"
	"time"
)

// Task is a unit of work run on the loop goroutine.
type Task func(ctx context.Context)

// Loop runs tasks one at a time in submission order. Everything that touches
// menu state goes through it, so those types need no locking.
type Loop struct {
	mu      sync.Mutex
	queue   []Task
	wake    chan struct{}
	stopped bool
}

// NewLoop returns an idle loop; call Run to start processing.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues task. Tasks posted after Run returns are dropped.
func (l *Loop) Post(task Task) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// After posts task once delay has elapsed. It never runs task inline.
func (l *Loop) After(delay time.Duration, task Task) {
	time.AfterFunc(delay, func() {
		l.Post(task)
	})
}

// Run processes tasks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		l.mu.Lock()
		l.stopped = true
		l.queue = nil
		l.mu.Unlock()
	}()
	for {
		for {
			task, ok := l.pop()
			if !ok {
				break
			}
			if ctx.Err() != nil {
				return nil
			}
			task(ctx)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

func (l *Loop) pop() (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}
