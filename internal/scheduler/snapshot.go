package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// QueueKey identifies one learner's queue on one learning path. Distinct keys
// are fully independent: they share no lock and no snapshot.
type QueueKey struct {
	UserID         uuid.UUID
	LearningPathID uuid.UUID
}

func (k QueueKey) String() string {
	return k.UserID.String() + "/" + k.LearningPathID.String()
}

// Entry is one (stitch, position) pair of a queue snapshot.
type Entry struct {
	StitchID uuid.UUID `json:"stitch_id"`
	Position int       `json:"position"`
}

// Snapshot is an immutable point-in-time view of a queue. Once built it is
// never mutated, so concurrent readers can hold it without coordination.
type Snapshot struct {
	Entries []Entry
	Version int64
	TakenAt time.Time
}

func NewSnapshot(order Order, version int64, takenAt time.Time) *Snapshot {
	entries := make([]Entry, len(order))
	for i, id := range order {
		entries[i] = Entry{StitchID: id, Position: i + 1}
	}
	return &Snapshot{Entries: entries, Version: version, TakenAt: takenAt}
}

// Head returns the stitch at position 1.
func (s *Snapshot) Head() (uuid.UUID, bool) {
	if s == nil || len(s.Entries) == 0 {
		return uuid.Nil, false
	}
	return s.Entries[0].StitchID, true
}

// Len returns the queue length.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// Order reconstructs the ordering slice for position arithmetic.
func (s *Snapshot) Order() Order {
	out := make(Order, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.StitchID
	}
	return out
}

// SnapshotCache holds the latest committed snapshot per queue. Stores replace
// the whole immutable value, so a reader sees either the previous state or
// the new one, never a mix.
type SnapshotCache struct {
	snaps sync.Map // QueueKey -> *Snapshot
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

func (c *SnapshotCache) Get(key QueueKey) (*Snapshot, bool) {
	v, ok := c.snaps.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*Snapshot), true
}

// Put installs snap unless the cache already holds that version or newer. A
// reader populating from a database read it took before a concurrent
// mutation committed must not clobber the mutation's published snapshot.
func (c *SnapshotCache) Put(key QueueKey, snap *Snapshot) {
	if snap == nil {
		return
	}
	for {
		cur, ok := c.snaps.Load(key)
		if !ok {
			if _, loaded := c.snaps.LoadOrStore(key, snap); !loaded {
				return
			}
			continue
		}
		if cur.(*Snapshot).Version >= snap.Version {
			return
		}
		if c.snaps.CompareAndSwap(key, cur, snap) {
			return
		}
	}
}

func (c *SnapshotCache) Drop(key QueueKey) {
	c.snaps.Delete(key)
}
