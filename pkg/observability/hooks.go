// Package observability provides hooks for logging and metrics.
//
// The core packages never log and never import a logging backend. Instead
// they emit events through hook interfaces registered once at startup. The
// defaults are no-ops, so a library user that registers nothing pays only for
// an interface call.
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
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Cache().OnCacheMiss("node-size")
//	// ... measure ...
//	observability.Render().OnMeasure(name, w, h, time.Since(start))
//
// Hooks are called synchronously on the caller's goroutine and must not call
// back into the component that emitted them.
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from node renderers.
type RenderHooks interface {
	// OnMeasure records a minimum-size computation that was not served from cache.
	OnMeasure(node string, width, height int, duration time.Duration)

	// OnPaint records a render call. err is non-nil if nothing was painted.
	OnPaint(node string, width, height int, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from in-memory caches.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(keyType string)

	// OnCacheInvalidate records an explicit or implicit cache clear.
	OnCacheInvalidate(keyType string)
}

// =============================================================================
// Document Hooks
// =============================================================================

// DocumentHooks receives events from document loading.
type DocumentHooks interface {
	// OnLoad records a document read. nodeCount is zero on error.
	OnLoad(path, format string, nodeCount int, duration time.Duration, err error)

	// OnBuild records the conversion of a document into nodes.
	OnBuild(typeCount, nodeCount int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnMeasure(string, int, int, time.Duration) {}
func (NoopRenderHooks) OnPaint(string, int, int, error)           {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)        {}
func (NoopCacheHooks) OnCacheMiss(string)       {}
func (NoopCacheHooks) OnCacheInvalidate(string) {}

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnLoad(string, string, int, time.Duration, error) {}
func (NoopDocumentHooks) OnBuild(int, int, error)                          {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks   RenderHooks   = NoopRenderHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	documentHooks DocumentHooks = NoopDocumentHooks{}
	hooksMu       sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetDocumentHooks registers custom document hooks.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
	documentHooks = NoopDocumentHooks{}
}
