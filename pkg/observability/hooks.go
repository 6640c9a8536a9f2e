// Package observability provides hooks for logging and metrics around
// diagram rendering.
//
// Library packages never log directly. They report events through the hooks
// registered here, and the application decides what to do with them. The CLI
// binds the hooks to its charmbracelet logger; tests can install recorders.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// The renderer calls hooks to emit events:
//
//	ctx = observability.Render().OnRenderStart(ctx, observability.RenderStart{...})
//	// ... lay out and encode ...
//	observability.Render().OnRenderComplete(ctx, observability.RenderResult{...})
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderStart describes a render that is about to begin.
type RenderStart struct {
	Title    string
	Path     string
	Format   string
	Nodes    int
	Edges    int
	Clusters int
}

// RenderResult describes a finished render. Err is nil on success.
type RenderResult struct {
	RenderStart
	Size     int64
	Duration time.Duration
	Err      error
}

// RenderHooks receives events from the diagram renderer.
type RenderHooks interface {
	// OnRenderStart is called before layout. The returned context is passed
	// to OnRenderComplete, which lets implementations attach span state.
	OnRenderStart(ctx context.Context, ev RenderStart) context.Context

	// OnRenderComplete is called exactly once per OnRenderStart.
	OnRenderComplete(ctx context.Context, res RenderResult)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(ctx context.Context, _ RenderStart) context.Context { return ctx }
func (NoopRenderHooks) OnRenderComplete(context.Context, RenderResult)                   {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. Nil is ignored.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
