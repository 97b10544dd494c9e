// Package observability provides hooks for instrumenting andebox.
//
// Libraries emit events through the registered hooks; the CLI decides what
// to do with them (by default nothing, with --verbose it logs them). This
// keeps pkg/ignorefile and pkg/toolrun free of any logging backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetIgnoresHooks(&myIgnoresHooks{})
//	observability.SetCommandHooks(&myCommandHooks{})
//
// Libraries call hooks to emit events:
//
//	observability.Ignores().OnSourceRead(name, len(entries), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Ignores Hooks
// =============================================================================

// IgnoresHooks receives events from the ignore-file statistics pipeline.
type IgnoresHooks interface {
	// OnSourceRead is called after a source was drained and closed. entries
	// counts the entries that survived filtering.
	OnSourceRead(source string, entries int, duration time.Duration, err error)

	// OnReport is called once the rows are ranked, before windowing.
	OnReport(rows, entries int)
}

// =============================================================================
// Command Hooks
// =============================================================================

// CommandHooks receives events from external tool invocations.
type CommandHooks interface {
	OnCommandStart(ctx context.Context, name string, args []string)
	OnCommandComplete(ctx context.Context, name string, exitCode int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopIgnoresHooks is a no-op implementation of IgnoresHooks.
type NoopIgnoresHooks struct{}

func (NoopIgnoresHooks) OnSourceRead(string, int, time.Duration, error) {}
func (NoopIgnoresHooks) OnReport(int, int)                              {}

// NoopCommandHooks is a no-op implementation of CommandHooks.
type NoopCommandHooks struct{}

func (NoopCommandHooks) OnCommandStart(context.Context, string, []string)                     {}
func (NoopCommandHooks) OnCommandComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	ignoresHooks IgnoresHooks = NoopIgnoresHooks{}
	commandHooks CommandHooks = NoopCommandHooks{}
	hooksMu      sync.RWMutex
)

// SetIgnoresHooks registers custom ignores hooks.
// This should be called once at application startup.
func SetIgnoresHooks(h IgnoresHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		ignoresHooks = h
	}
}

// SetCommandHooks registers custom command hooks.
// This should be called once at application startup.
func SetCommandHooks(h CommandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		commandHooks = h
	}
}

// Ignores returns the registered ignores hooks.
func Ignores() IgnoresHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return ignoresHooks
}

// Command returns the registered command hooks.
func Command() CommandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return commandHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	ignoresHooks = NoopIgnoresHooks{}
	commandHooks = NoopCommandHooks{}
}
