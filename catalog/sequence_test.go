package catalog

import (
	"sync"
	"testing"
)

func TestSequenceGuardLastIssuedWins(t *testing.T) {
	g := NewSequenceGuard()

	first := g.Begin("session")
	second := g.Begin("session")
	if second <= first {
		t.Fatalf("sequence numbers must increase: %d then %d", first, second)
	}

	// the newer request's response lands first
	if !g.Commit("session", second) {
		t.Fatal("newest response must commit")
	}
	// the older response arrives late and must be discarded
	if g.Commit("session", first) {
		t.Error("stale response committed; last-issued-request-wins violated")
	}
}

func TestSequenceGuardInOrderResponses(t *testing.T) {
	g := NewSequenceGuard()
	a := g.Begin("s")
	b := g.Begin("s")

	if !g.Commit("s", a) {
		t.Error("in-order first response must commit")
	}
	if !g.Commit("s", b) {
		t.Error("in-order second response must commit")
	}
}

func TestSequenceGuardSessionsAreIndependent(t *testing.T) {
	g := NewSequenceGuard()
	g.Begin("a")
	seqA2 := g.Begin("a")
	seqB := g.Begin("b")

	if !g.Commit("a", seqA2) {
		t.Fatal("session a must commit")
	}
	if !g.Commit("b", seqB) {
		t.Error("another session must not be affected by session a's sequence")
	}
}

func TestSequenceGuardForget(t *testing.T) {
	g := NewSequenceGuard()
	seq := g.Begin("s")
	g.Commit("s", seq)
	g.Forget("s")

	if got := g.Begin("s"); got != 1 {
		t.Errorf("after Forget the sequence restarts, got %d", got)
	}
}

func TestSequenceGuardConcurrentBegin(t *testing.T) {
	g := NewSequenceGuard()
	const n = 100

	var wg sync.WaitGroup
	seen := make(chan uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen <- g.Begin("s")
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]struct{}, n)
	for seq := range seen {
		if _, dup := unique[seq]; dup {
			t.Fatalf("duplicate sequence number %d", seq)
		}
		unique[seq] = struct{}{}
	}
	if len(unique) != n {
		t.Errorf("expected %d unique sequence numbers, got %d", n, len(unique))
	}
}
