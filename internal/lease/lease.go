// Package lease tracks exclusive byte-range checkouts over a single
// buffer. A Table records live half-open [start, end) leases and
// refuses an acquisition that overlaps one, which turns aliasing write
// handles from silent corruption into an error at construction time.
package lease

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrOverlap reports an acquisition overlapping a live lease.
var ErrOverlap = errors.New("lease: range overlaps an active lease")

// Table is the set of live leases over one buffer. Use NewTable; the
// zero value works but shares nothing. All methods are safe for
// concurrent use.
type Table struct {
	mu     sync.Mutex
	nextID uint64
	live   []entry
}

type entry struct {
	id    uint64
	start int
	end   int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Acquire checks out [start, end). It fails with ErrOverlap when the
// range shares a byte with any live lease. Empty ranges hold no bytes
// and never conflict.
func (t *Table) Acquire(start, end int) (*Lease, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// an empty range holds no bytes, whichever side of the scan it is on
	if start != end {
		for _, e := range t.live {
			if e.start == e.end {
				continue
			}
			if start < e.end && e.start < end {
				return nil, fmt.Errorf("%w: [%d:%d) against [%d:%d)", ErrOverlap, start, end, e.start, e.end)
			}
		}
	}

	t.nextID++
	t.live = append(t.live, entry{id: t.nextID, start: start, end: end})
	return &Lease{table: t, id: t.nextID}, nil
}

// Active returns the number of live leases.
func (t *Table) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

func (t *Table) drop(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.live {
		if e.id == id {
			t.live = append(t.live[:i], t.live[i+1:]...)
			return
		}
	}
}

// Lease is one live checkout. Handles derived from it consult Released
// on their write paths, so releasing is what revokes write access.
type Lease struct {
	table    *Table
	id       uint64
	released atomic.Bool
}

// Release returns the lease's range to the table. It is idempotent and
// safe to call from a defer alongside explicit calls.
func (l *Lease) Release() {
	if !l.released.CompareAndSwap(false, true) {
		return
	}
	l.table.drop(l.id)
}

// Released reports whether Release has run.
func (l *Lease) Released() bool {
	return l.released.Load()
}
