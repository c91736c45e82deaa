package event

import (
	"context"
	"sync"
)

// Dispatcher delivers events to the server.
type Dispatcher interface {
	Dispatch(ctx context.Context, h Handle, payload map[string]any) error
}

// DispatcherFunc adapts a function into a Dispatcher.
type DispatcherFunc func(ctx context.Context, h Handle, payload map[string]any) error

// Dispatch delegates to the underlying function.
func (fn DispatcherFunc) Dispatch(ctx context.Context, h Handle, payload map[string]any) error {
	return fn(ctx, h, payload)
}

// Noop drops every event (used when no transport is configured).
type Noop struct{}

func (Noop) Dispatch(context.Context, Handle, map[string]any) error {
	return nil
}

// Dispatched is one event captured by a Recorder.
type Dispatched struct {
	Handle  Handle
	Payload map[string]any
}

// Recorder keeps dispatched events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Dispatched
}

// Dispatch implements Dispatcher.
func (r *Recorder) Dispatch(ctx context.Context, h Handle, payload map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Dispatched{Handle: h, Payload: payload})
	return nil
}

// Events returns a copy of everything dispatched so far.
func (r *Recorder) Events() []Dispatched {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Dispatched(nil), r.events...)
}

// Count returns how many events named name were dispatched.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Handle.Event == name {
			n++
		}
	}
	return n
}

// Reset drops recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
