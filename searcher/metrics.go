package searcher

import "time"

// SearchMetrics reports what one decision cost. Diagnostic only; no
// behavior depends on it.
type SearchMetrics struct {
	Depth       int
	Nodes       int
	CacheHits   int
	CacheStores int
	Cutoffs     int
	Elapsed     time.Duration
}
