// Package metrics provides per-build counters for the pack pipeline.
//
// The Collector accumulates counters during a single build. It is a leaf
// package with no internal dependencies.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of build counters.
// Returned by Collector.Snapshot(). Safe to read concurrently after
// creation.
type Snapshot struct {
	ModulesProcessed int64
	ModulesInlined   int64
	AssetsEmitted    int64
	BytesEmitted     int64
	ConfigErrors     int64

	// Dimensions (informational, set at construction)
	BuildID string
}

// Collector accumulates metrics during a single build.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe.
type Collector struct {
	mu sync.Mutex

	modulesProcessed int64
	modulesInlined   int64
	assetsEmitted    int64
	bytesEmitted     int64
	configErrors     int64

	buildID string
}

// NewCollector creates a collector for one build.
func NewCollector(buildID string) *Collector {
	return &Collector{buildID: buildID}
}

// IncModulesProcessed records one module run through the generator.
func (c *Collector) IncModulesProcessed() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modulesProcessed++
}

// IncModulesInlined records one module embedded as a data URL.
func (c *Collector) IncModulesInlined() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modulesInlined++
}

// AddAssetEmitted records one emitted resource file of the given size.
func (c *Collector) AddAssetEmitted(bytes int64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assetsEmitted++
	c.bytesEmitted += bytes
}

// IncConfigErrors records one configuration failure.
func (c *Collector) IncConfigErrors() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.configErrors++
}

// Snapshot returns an atomic copy of all counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		ModulesProcessed: c.modulesProcessed,
		ModulesInlined:   c.modulesInlined,
		AssetsEmitted:    c.assetsEmitted,
		BytesEmitted:     c.bytesEmitted,
		ConfigErrors:     c.configErrors,
		BuildID:          c.buildID,
	}
}
