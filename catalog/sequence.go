package catalog

import (
	"errors"
	"sync"
)

// ErrStaleResult marks a catalog response that lost the race against a newer
// request in the same listing session. It is discarded silently by callers,
// never surfaced as a failure.
var ErrStaleResult = errors.New("catalog: stale result superseded by a newer request")

// SequenceGuard serializes overlapping catalog queries within one listing
// session. Each outgoing query takes a monotonically increasing sequence
// number; a response commits only if no higher-numbered response committed
// first, guaranteeing last-issued-request-wins. Superseded requests are not
// aborted, their results are simply ignored.
type SequenceGuard struct {
	mu        sync.Mutex
	issued    map[string]uint64
	committed map[string]uint64
}

func NewSequenceGuard() *SequenceGuard {
	return &SequenceGuard{
		issued:    make(map[string]uint64),
		committed: make(map[string]uint64),
	}
}

// Begin tags a new outgoing query for the given session key.
func (g *SequenceGuard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued[key]++
	return g.issued[key]
}

// Commit applies a completed query's result. It reports false when a query
// with a higher sequence number already committed, in which case the caller
// must discard the result.
func (g *SequenceGuard) Commit(key string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq < g.committed[key] {
		return false
	}
	g.committed[key] = seq
	return true
}

// Forget drops all sequence state for a session key.
func (g *SequenceGuard) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.issued, key)
	delete(g.committed, key)
}
