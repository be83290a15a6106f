// Package display supplies screen metrics to layouts that need a fallback
// when their parent leaves an axis unbounded.
package display

import "sync"

// Metrics holds the pixel dimensions of the screen.
type Metrics struct {
	Width  int
	Height int
	// Density is the pixels-per-dp scale factor. Zero is treated as 1.
	Density float64
}

// Scale converts a density-independent value to pixels, rounding to the
// nearest pixel the way dimension resources are resolved on device.
func (m Metrics) Scale(dp float64) int {
	d := m.Density
	if d <= 0 {
		d = 1
	}
	px := dp * d
	if px >= 0 {
		return int(px + 0.5)
	}
	return int(px - 0.5)
}

// Provider reports the current screen metrics.
type Provider interface {
	ScreenMetrics() Metrics
}

// Static is a Provider that always returns the same metrics.
type Static Metrics

// ScreenMetrics returns m.
func (m Static) ScreenMetrics() Metrics {
	return Metrics(m)
}

// Cached queries metrics once and serves the cached value until Reset.
// It is safe for concurrent use.
type Cached struct {
	query func() Metrics

	mu      sync.RWMutex
	metrics Metrics
	valid   bool
}

// NewCached returns a Cached provider backed by query.
func NewCached(query func() Metrics) *Cached {
	return &Cached{query: query}
}

// ScreenMetrics returns the cached metrics, querying on first use.
func (c *Cached) ScreenMetrics() Metrics {
	c.mu.RLock()
	if c.valid {
		m := c.metrics
		c.mu.RUnlock()
		return m
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		if c.query != nil {
			c.metrics = c.query()
		}
		c.valid = true
	}
	return c.metrics
}

// Reset drops the cached metrics so the next call queries again.
// Hosts call this after a display or orientation change.
func (c *Cached) Reset() {
	c.mu.Lock()
	c.valid = false
	c.metrics = Metrics{}
	c.mu.Unlock()
}
