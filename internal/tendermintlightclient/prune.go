package tendermintlightclient

import (
	"container/heap"
	"sync"
	"time"
)

// heightAge pairs a height with the wall-clock time its ConsensusState was
// recorded, the unit PruneConsensusStates rotates out once it exceeds
// TrustingPeriod.
type heightAge struct {
	Height    Height
	RecordAge time.Time
}

// ageHeap is a min-heap over heightAge ordered by RecordAge, adapted from
// the event loop's time-keyed data rotation: the oldest consensus state is
// always at the root, so pruning pops until the remaining root is still
// within the trusting period.
type ageHeap []heightAge

func (h ageHeap) Len() int            { return len(h) }
func (h ageHeap) Less(i, j int) bool  { return h[i].RecordAge.Before(h[j].RecordAge) }
func (h ageHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *ageHeap) Push(x interface{}) { *h = append(*h, x.(heightAge)) }
func (h *ageHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func (h ageHeap) peek() (heightAge, bool) {
	if len(h) == 0 {
		return heightAge{}, false
	}
	return h[0], true
}

// ConsensusStateStore tracks every recorded ConsensusState for a client
// alongside its record time, so PruneConsensusStates can evict the stale
// ones in one batch.
type ConsensusStateStore struct {
	mu     sync.Mutex
	states map[Height]*ConsensusState
	ages   ageHeap
}

// NewConsensusStateStore builds an empty store.
func NewConsensusStateStore() *ConsensusStateStore {
	s := &ConsensusStateStore{states: make(map[Height]*ConsensusState)}
	heap.Init(&s.ages)
	return s
}

// Record stores a ConsensusState for height, recorded at recordedAt.
func (s *ConsensusStateStore) Record(height Height, cs *ConsensusState, recordedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[height] = cs
	heap.Push(&s.ages, heightAge{Height: height, RecordAge: recordedAt})
}

// Get returns the ConsensusState at height, if still present.
func (s *ConsensusStateStore) Get(height Height) (*ConsensusState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.states[height]
	return cs, ok
}

// PruneConsensusStates evicts every recorded ConsensusState older than
// trustingPeriod as of now, up to maxBatch evictions, returning the heights
// actually pruned. Entries already deleted (e.g. by a prior batch) are
// skipped rather than treated as an error, matching the "accounts not owned
// by the router are skipped" tolerance the router's cleanup operation uses
// for the same reason: batched eviction must be safely re-entrant.
func (s *ConsensusStateStore) PruneConsensusStates(now time.Time, trustingPeriod time.Duration, maxBatch int) []Height {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := make([]Height, 0, maxBatch)
	for len(pruned) < maxBatch {
		top, ok := s.ages.peek()
		if !ok || now.Sub(top.RecordAge) < trustingPeriod {
			break
		}
		heap.Pop(&s.ages)
		if _, exists := s.states[top.Height]; !exists {
			continue
		}
		delete(s.states, top.Height)
		pruned = append(pruned, top.Height)
	}
	return pruned
}
