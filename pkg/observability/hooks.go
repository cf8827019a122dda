// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about placement passes and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the core engine dependency-free from observability frameworks
// and avoids import cycles: hooks are registered by main, not by libraries.
//
// # Usage
//
//	func main() {
//	    observability.SetPassHooks(&myPassHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Pass Hooks
// =============================================================================

// PassHooks receives events from placement passes.
type PassHooks interface {
	// OnPassStart records the beginning of a placement pass.
	OnPassStart(passID string, itemCount int)

	// OnFallback records a strategy exhausting its attempt budget for the
	// entry at the given display index.
	OnFallback(strategy string, index int)

	// OnPassComplete records a finished pass with its placement count and
	// how many placements fell through to the lattice floor.
	OnPassComplete(passID string, placed, latticed int, duration time.Duration)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP preview API.
type ServerHooks interface {
	// OnRequest records an incoming API request.
	OnRequest(method, path string)

	// OnResponse records a completed API request.
	OnResponse(method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPassHooks is a no-op implementation of PassHooks.
type NoopPassHooks struct{}

func (NoopPassHooks) OnPassStart(string, int)                        {}
func (NoopPassHooks) OnFallback(string, int)                         {}
func (NoopPassHooks) OnPassComplete(string, int, int, time.Duration) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(string, string)                      {}
func (NoopServerHooks) OnResponse(string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	passHooks   PassHooks   = NoopPassHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetPassHooks registers custom pass hooks.
// This should be called once at application startup before any passes run.
func SetPassHooks(h PassHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		passHooks = h
	}
}

// SetServerHooks registers custom server hooks.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Pass returns the registered pass hooks.
func Pass() PassHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return passHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	passHooks = NoopPassHooks{}
	serverHooks = NoopServerHooks{}
}
