package searcher

// The cache memoizes search results for a single decision: it is built
// fresh inside every FindMove and discarded when the decision returns.
// Entries carry a bound flag so a value produced under a cutoff is only
// reused when it is compatible with the probing node's window. Reusing
// cut-off values verbatim would silently return pruned approximations
// as if they were exact minimax values.

type bound uint8

const (
	boundExact bound = iota
	boundLower
	boundUpper
)

type cacheKey struct {
	board string
	depth int
}

type cacheEntry struct {
	score int
	flag  bound
}

type transpositionCache struct {
	entries map[cacheKey]cacheEntry
	hits    int
	stores  int
}

func newTranspositionCache() *transpositionCache {
	return &transpositionCache{entries: make(map[cacheKey]cacheEntry)}
}

// probe returns a stored score usable inside the (alpha, beta) window.
// Exact entries are always usable; a lower bound only proves a cutoff
// when it already meets beta, an upper bound when it falls below alpha.
func (t *transpositionCache) probe(key cacheKey, alpha, beta int) (int, bool) {
	e, ok := t.entries[key]
	if !ok {
		return 0, false
	}
	switch e.flag {
	case boundExact:
		t.hits++
		return e.score, true
	case boundLower:
		if e.score >= beta {
			t.hits++
			return e.score, true
		}
	case boundUpper:
		if e.score <= alpha {
			t.hits++
			return e.score, true
		}
	}
	return 0, false
}

// storeExact records a score known to be the true value at this depth.
func (t *transpositionCache) storeExact(key cacheKey, score int) {
	t.entries[key] = cacheEntry{score: score, flag: boundExact}
	t.stores++
}

// store records a search result, flagging it by where it landed relative
// to the window the node was searched with: at or below the original
// alpha it is only an upper bound, at or above beta only a lower bound.
func (t *transpositionCache) store(key cacheKey, score, alpha, beta int) {
	flag := boundExact
	switch {
	case score <= alpha:
		flag = boundUpper
	case score >= beta:
		flag = boundLower
	}
	t.entries[key] = cacheEntry{score: score, flag: flag}
	t.stores++
}
