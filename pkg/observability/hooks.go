// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about figure and animation encoding.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEncodeHooks(&myEncodeHooks{})
//	    // ... build documents
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Encode().OnEncodeStart(ctx, "figure", "png")
//	// ... render and base64-encode ...
//	observability.Encode().OnEncodeComplete(ctx, "figure", "png", size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Encode Hooks
// =============================================================================

// EncodeHooks receives events from graphic encoding.
// kind is "figure" or "animation"; size is the length of the produced data URI.
type EncodeHooks interface {
	OnEncodeStart(ctx context.Context, kind, format string)
	OnEncodeComplete(ctx context.Context, kind, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEncodeHooks is a no-op implementation of EncodeHooks.
type NoopEncodeHooks struct{}

func (NoopEncodeHooks) OnEncodeStart(context.Context, string, string) {}
func (NoopEncodeHooks) OnEncodeComplete(context.Context, string, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	encodeHooks EncodeHooks = NoopEncodeHooks{}
	hooksMu     sync.RWMutex
)

// SetEncodeHooks registers custom encode hooks.
// This should be called once at application startup before any encoding.
func SetEncodeHooks(h EncodeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		encodeHooks = h
	}
}

// Encode returns the registered encode hooks.
func Encode() EncodeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return encodeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	encodeHooks = NoopEncodeHooks{}
}
