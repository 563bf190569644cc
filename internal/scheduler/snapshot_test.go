package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSnapshotHeadAndOrder(t *testing.T) {
	order := makeOrder(4)
	snap := NewSnapshot(order, 7, time.Now().UTC())

	head, ok := snap.Head()
	if !ok || head != order[0] {
		t.Fatalf("Head: got %s ok=%v, want %s", head, ok, order[0])
	}
	if snap.Len() != 4 {
		t.Fatalf("Len: got %d", snap.Len())
	}
	assertPositions(t, snap.Order(), order)
	for i, e := range snap.Entries {
		if e.Position != i+1 {
			t.Fatalf("entry %d has position %d", i, e.Position)
		}
	}
}

func TestSnapshotEmpty(t *testing.T) {
	snap := NewSnapshot(Order{}, 1, time.Now().UTC())
	if _, ok := snap.Head(); ok {
		t.Fatal("empty snapshot reported a head stitch")
	}
	var nilSnap *Snapshot
	if _, ok := nilSnap.Head(); ok {
		t.Fatal("nil snapshot reported a head stitch")
	}
	if nilSnap.Len() != 0 {
		t.Fatal("nil snapshot reported entries")
	}
}

func TestSnapshotCacheReplaceAndDrop(t *testing.T) {
	cache := NewSnapshotCache()
	key := QueueKey{UserID: uuid.New(), LearningPathID: uuid.New()}

	if _, ok := cache.Get(key); ok {
		t.Fatal("empty cache returned a snapshot")
	}

	first := NewSnapshot(makeOrder(3), 1, time.Now().UTC())
	cache.Put(key, first)
	got, ok := cache.Get(key)
	if !ok || got != first {
		t.Fatal("cache did not return stored snapshot")
	}

	second := NewSnapshot(makeOrder(3), 2, time.Now().UTC())
	cache.Put(key, second)
	if got, _ := cache.Get(key); got != second {
		t.Fatal("cache did not replace snapshot")
	}

	cache.Drop(key)
	if _, ok := cache.Get(key); ok {
		t.Fatal("dropped key still cached")
	}
}

// A reader that loaded the queue before a mutation committed must not
// clobber the mutation's published snapshot when it stores its older view.
func TestSnapshotCachePutIgnoresStaleVersion(t *testing.T) {
	cache := NewSnapshotCache()
	key := QueueKey{UserID: uuid.New(), LearningPathID: uuid.New()}

	newer := NewSnapshot(makeOrder(4), 7, time.Now().UTC())
	cache.Put(key, newer)

	stale := NewSnapshot(makeOrder(4), 6, time.Now().UTC())
	cache.Put(key, stale)
	if got, _ := cache.Get(key); got != newer {
		t.Fatal("stale snapshot replaced a newer one")
	}

	same := NewSnapshot(makeOrder(4), 7, time.Now().UTC())
	cache.Put(key, same)
	if got, _ := cache.Get(key); got != newer {
		t.Fatal("equal-version snapshot replaced the cached one")
	}

	next := NewSnapshot(makeOrder(4), 8, time.Now().UTC())
	cache.Put(key, next)
	if got, _ := cache.Get(key); got != next {
		t.Fatal("newer snapshot was not installed")
	}
}

// Readers racing with writers must only ever observe complete snapshots:
// either the previous version or the new one, with intact contiguity.
func TestSnapshotCacheNoTornReads(t *testing.T) {
	cache := NewSnapshotCache()
	key := QueueKey{UserID: uuid.New(), LearningPathID: uuid.New()}
	order := makeOrder(8)
	cache.Put(key, NewSnapshot(order, 0, time.Now().UTC()))

	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		cur := order
		for v := int64(1); v <= 500; v++ {
			next, err := cur.Reposition(1, ClampSkip(20, len(cur)))
			if err != nil {
				t.Errorf("Reposition: %v", err)
				return
			}
			cur = next
			cache.Put(key, NewSnapshot(cur, v, time.Now().UTC()))
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap, ok := cache.Get(key)
				if !ok {
					continue
				}
				if err := snap.Order().Validate(); err != nil {
					t.Errorf("torn read at version %d: %v", snap.Version, err)
					return
				}
			}
		}()
	}

	wg.Wait()
}
