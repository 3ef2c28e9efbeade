// Package observability provides hooks for instrumenting the reader.
//
// Libraries emit events through globally registered hooks; the defaults are
// no-ops, so nothing is recorded unless the application opts in. The CLI
// registers logging hooks when run with --verbose.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetNavigationHooks(&myNavHooks{})
//	    observability.SetSketchHooks(&mySketchHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Navigation().OnNavigate(from, to)
//	observability.Sketch().OnStrokeEnd(visitID, segments)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Navigation Hooks
// =============================================================================

// NavigationHooks receives events from the page navigator.
type NavigationHooks interface {
	// OnRender records that the page at index was shown.
	OnRender(index, length int, title string, drawable bool)

	// OnNavigate records a cursor move. Guarded no-ops at the ends of the
	// book are not reported.
	OnNavigate(from, to int)
}

// =============================================================================
// Sketch Hooks
// =============================================================================

// SketchHooks receives events from drawing surfaces. visit identifies the
// surface attached for one page visit.
type SketchHooks interface {
	OnAttach(visit string, width, height int)
	OnStrokeStart(visit string)
	OnStrokeEnd(visit string, segments int)
	OnClear(visit string)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from book and drawing exports.
type ExportHooks interface {
	OnExport(format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopNavigationHooks is a no-op implementation of NavigationHooks.
type NoopNavigationHooks struct{}

func (NoopNavigationHooks) OnRender(int, int, string, bool) {}
func (NoopNavigationHooks) OnNavigate(int, int)             {}

// NoopSketchHooks is a no-op implementation of SketchHooks.
type NoopSketchHooks struct{}

func (NoopSketchHooks) OnAttach(string, int, int) {}
func (NoopSketchHooks) OnStrokeStart(string)      {}
func (NoopSketchHooks) OnStrokeEnd(string, int)   {}
func (NoopSketchHooks) OnClear(string)            {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExport(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	navigationHooks NavigationHooks = NoopNavigationHooks{}
	sketchHooks     SketchHooks     = NoopSketchHooks{}
	exportHooks     ExportHooks     = NoopExportHooks{}
	hooksMu         sync.RWMutex
)

// SetNavigationHooks registers custom navigation hooks.
func SetNavigationHooks(h NavigationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		navigationHooks = h
	}
}

// SetSketchHooks registers custom sketch hooks.
func SetSketchHooks(h SketchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sketchHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Navigation returns the registered navigation hooks.
func Navigation() NavigationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return navigationHooks
}

// Sketch returns the registered sketch hooks.
func Sketch() SketchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sketchHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	navigationHooks = NoopNavigationHooks{}
	sketchHooks = NoopSketchHooks{}
	exportHooks = NoopExportHooks{}
}
