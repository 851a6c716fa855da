// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module emit events through hook interfaces with no-op
// defaults; an application registers its own implementations once at
// startup. This keeps metrics and tracing backends out of the library
// packages.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, mode, rows, cols)
//	// ... compute geometry ...
//	observability.Pipeline().OnLayoutComplete(ctx, mode, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the calendar pipeline.
type PipelineHooks interface {
	// Assemble events
	OnAssembleStart(ctx context.Context, kind string, from, to int)
	OnAssembleComplete(ctx context.Context, kind string, rows, cols int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, mode string, rows, cols int)
	OnLayoutComplete(ctx context.Context, mode string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, primitives int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP API.
type ServerHooks interface {
	// OnRequest records an incoming request. route is the matched
	// pattern, such as "/api/v1/weeks/{year}".
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records a finished request.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnAssembleStart(context.Context, string, int, int) {}
func (NoopPipelineHooks) OnAssembleComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)        {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	serverHooks   ServerHooks   = NoopServerHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks registers custom HTTP server hooks.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the registered HTTP server hooks.
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
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
