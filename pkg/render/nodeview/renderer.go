package nodeview

import (
	"time"

	"github.com/matzehuels/analogue/pkg/node"
	"github.com/matzehuels/analogue/pkg/observability"
	"github.com/matzehuels/analogue/pkg/render/grid"
)

// cacheKeyType labels cache events emitted by the renderer.
const cacheKeyType = "node-size"

// Renderer measures and paints one bound node at a time.
type Renderer struct {
	lib  *node.Library
	opts *DisplayOptions
	node *node.Node

	cache *cacheEntry
}

type cacheEntry struct {
	size        grid.Size
	fingerprint uint64
}

// New creates an unbound renderer. lib resolves node and type names. opts is
// read on every call, so the caller may toggle it between calls; nil selects
// DefaultDisplayOptions.
func New(lib *node.Library, opts *DisplayOptions) *Renderer {
	if lib == nil {
		lib = node.NewLibrary(nil)
	}
	if opts == nil {
		d := DefaultDisplayOptions()
		opts = &d
	}
	return &Renderer{lib: lib, opts: opts}
}

// Bind attaches n and clears the cache, even if n is already bound.
func (r *Renderer) Bind(n *node.Node) {
	r.node = n
	r.Invalidate()
}

// Release detaches the bound node and clears the cache.
func (r *Renderer) Release() {
	r.node = nil
	r.Invalidate()
}

// Invalidate clears the cached minimum size.
func (r *Renderer) Invalidate() {
	if r.cache != nil {
		r.cache = nil
		observability.Cache().OnCacheInvalidate(cacheKeyType)
	}
}

// IsBound reports whether a node is bound.
func (r *Renderer) IsBound() bool { return r.node != nil }

// Node returns the bound node, or nil.
func (r *Renderer) Node() *node.Node { return r.node }

// Options returns the display options in use.
func (r *Renderer) Options() *DisplayOptions { return r.opts }

// MinimumSize returns the smallest area the bound node can be painted into.
func (r *Renderer) MinimumSize() (grid.Size, error) {
	if r.node == nil {
		return grid.Size{}, errUnbound("minimum size")
	}

	fp := fingerprint(r.node, r.opts)
	if r.cache != nil && r.cache.fingerprint == fp {
		observability.Cache().OnCacheHit(cacheKeyType)
		return r.cache.size, nil
	}
	observability.Cache().OnCacheMiss(cacheKeyType)

	start := time.Now()
	l := r.layout()
	size := l.size()
	observability.Render().OnMeasure(l.name, size.Width, size.Height, time.Since(start))

	r.cache = &cacheEntry{size: size, fingerprint: fp}
	return size, nil
}

// Render paints the bound node into area. If area is smaller than the
// minimum size nothing is painted and an *InsufficientAreaError is returned.
func (r *Renderer) Render(area grid.Rect, g grid.Grid) error {
	if r.node == nil {
		err := errUnbound("render")
		observability.Render().OnPaint("", area.Width, area.Height, err)
		return err
	}

	required, err := r.MinimumSize()
	if err != nil {
		return err
	}
	name := r.lib.DisplayName(r.node)
	if !area.Fits(required) {
		err := &InsufficientAreaError{Required: required, Given: area.Size()}
		observability.Render().OnPaint(name, area.Width, area.Height, err)
		return err
	}

	r.layout().paint(area, g)
	observability.Render().OnPaint(name, area.Width, area.Height, nil)
	return nil
}

// Buffer renders the bound node into a fresh buffer of its minimum size.
func (r *Renderer) Buffer() (*grid.Buffer, error) {
	size, err := r.MinimumSize()
	if err != nil {
		return nil, err
	}
	buf := grid.NewBuffer(size.Width, size.Height)
	if err := r.Render(buf.Area(), buf); err != nil {
		return nil, err
	}
	return buf, nil
}
