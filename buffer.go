package strview

import (
	"unicode/utf8"

	"github.com/dshills/strview/internal/lease"
)

// Buffer owns a mutable UTF-8 text and checks write access out at
// runtime, so that no two live write handles ever alias the same bytes.
// It is the enforced alternative to the hand-off contracts on
// NewViewMut, NewCharMut, and NewCharsMut.
//
// Reads need no checkout and are always available. Writers acquire a
// lease first: views and rune iterators lease the whole buffer, since
// they can roam the entire base, while a char handle leases only its
// own rune's span, so edits to disjoint runes can be held at the same
// time. Acquiring a range that overlaps a live lease fails with
// ErrRangeBusy. Every acquisition returns an idempotent release
// function; after release, the handle's write paths panic.
//
// The lease table orders its own bookkeeping, but the text itself is
// not synchronized: concurrent writers on disjoint leases are safe,
// concurrent reads during a write see whatever bytes are there.
type Buffer struct {
	data  []byte
	str   string // no-copy alias of data
	table *lease.Table
}

// NewBuffer wraps b, taking ownership: from here on the caller must
// reach the bytes only through the buffer.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b, str: byteString(b), table: lease.NewTable()}
}

// BufferOf copies s into a fresh mutable buffer. This is the one
// allocating constructor in the package; everything after it operates
// in place.
func BufferOf(s string) *Buffer {
	return NewBuffer([]byte(s))
}

// Len returns the buffer's length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// String returns the buffer's content without copying. The result
// aliases the buffer and observes later writes.
func (b *Buffer) String() string {
	return b.str
}

// RuneAt returns the rune starting at the given byte offset and its
// encoded size. Returns utf8.RuneError and size 0 if the offset is out
// of range.
func (b *Buffer) RuneAt(off int) (rune, int) {
	if off < 0 || off >= len(b.data) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(b.data[off:])
}

// View returns a read-only view spanning the whole buffer. Read views
// are free: they take no lease and any number may overlap.
func (b *Buffer) View() View {
	return NewView(b.str)
}

// ViewAt returns a read-only view of [start:end), under the same
// construction contract as NewViewAt.
func (b *Buffer) ViewAt(start, end int) View {
	return NewViewAt(b.str, start, end)
}

// Chars returns a read-handle iterator over the whole buffer.
func (b *Buffer) Chars() *Chars {
	return NewChars(b.str)
}

// AcquireView checks out a write view spanning the whole buffer. It
// fails with ErrRangeBusy while any other lease is live.
func (b *Buffer) AcquireView() (*ViewMut, func(), error) {
	return b.AcquireViewAt(0, len(b.data))
}

// AcquireViewAt checks out a write view of [start:end). The window is
// validated like NewViewMutAt (bad edges panic). The lease still covers
// the whole buffer: a view's extends can reach any byte of the base, so
// a narrower lease would not protect what the handle can touch.
func (b *Buffer) AcquireViewAt(start, end int) (*ViewMut, func(), error) {
	checkWindow(b.str, start, end)
	l, err := b.table.Acquire(0, len(b.data))
	if err != nil {
		return nil, nil, ErrRangeBusy
	}
	v := &ViewMut{
		base: b.data,
		str:  b.str,
		win:  window{start: start, size: end - start},
		ls:   l,
	}
	return v, l.Release, nil
}

// AcquireChar checks out a write handle to the rune starting at the
// given byte offset, leasing exactly that rune's span. Handles on
// disjoint runes can be live together; an overlap fails with
// ErrRangeBusy. Offsets outside the buffer fail with
// ErrOffsetOutOfRange and mid-rune offsets with ErrNotSingleRune.
func (b *Buffer) AcquireChar(off int) (CharMut, func(), error) {
	if off < 0 || off >= len(b.data) {
		return CharMut{}, nil, ErrOffsetOutOfRange
	}
	_, width := utf8.DecodeRune(b.data[off:])
	c, err := NewCharMut(b.data[off : off+width : off+width])
	if err != nil {
		return CharMut{}, nil, err
	}
	l, err := b.table.Acquire(off, off+width)
	if err != nil {
		return CharMut{}, nil, ErrRangeBusy
	}
	c.ls = l
	return c, l.Release, nil
}

// AcquireChars checks out a write-handle iterator over the whole
// buffer. It fails with ErrRangeBusy while any other lease is live.
func (b *Buffer) AcquireChars() (*CharsMut, func(), error) {
	l, err := b.table.Acquire(0, len(b.data))
	if err != nil {
		return nil, nil, ErrRangeBusy
	}
	return &CharsMut{rest: b.data, ls: l}, l.Release, nil
}

// MakeUpper uppercases the whole buffer under a transient whole-buffer
// lease, with MakeUpper's skipping rule. It fails with ErrRangeBusy
// while any lease is live.
func (b *Buffer) MakeUpper() (int, error) {
	l, err := b.table.Acquire(0, len(b.data))
	if err != nil {
		return 0, ErrRangeBusy
	}
	defer l.Release()
	return MakeUpper(b.data), nil
}

// MakeLower lowercases the whole buffer, like MakeUpper.
func (b *Buffer) MakeLower() (int, error) {
	l, err := b.table.Acquire(0, len(b.data))
	if err != nil {
		return 0, ErrRangeBusy
	}
	defer l.Release()
	return MakeLower(b.data), nil
}

// Writers returns the number of live leases.
func (b *Buffer) Writers() int {
	return b.table.Active()
}
