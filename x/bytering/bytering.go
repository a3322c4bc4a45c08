// Package bytering is a single-producer, single-consumer byte FIFO used as
// a UART receive buffer. Writers never block: Write stores what fits and
// reports how much that was.
package bytering

import "sync/atomic"

type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)

	readable chan struct{} // empty -> non-empty edge
}

// New allocates a ring; size must be a power of two >= 2.
func New(size int) *Ring {
	if size < 2 || (size&(size-1)) != 0 {
		panic("bytering: size must be power of two >= 2")
	}
	return &Ring{
		buf:      make([]byte, size),
		mask:     uint32(size - 1),
		readable: make(chan struct{}, 1),
	}
}

func (r *Ring) Cap() int { return len(r.buf) }

// Len is the number of bytes waiting to be read.
func (r *Ring) Len() int { return int(r.wr.Load() - r.rd.Load()) }

// Write appends as much of p as fits and returns the count stored.
func (r *Ring) Write(p []byte) int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	before := wr - rd
	n := 0
	for _, b := range p {
		if wr-rd == uint32(len(r.buf)) {
			break
		}
		r.buf[wr&r.mask] = b
		wr++
		n++
	}
	r.wr.Store(wr) // release
	if before == 0 && n > 0 {
		select {
		case r.readable <- struct{}{}:
		default:
		}
	}
	return n
}

// ReadByte pops one byte without blocking.
func (r *Ring) ReadByte() (byte, bool) {
	rd := r.rd.Load()
	if r.wr.Load() == rd { // acquire
		return 0, false
	}
	b := r.buf[rd&r.mask]
	r.rd.Store(rd + 1)
	return b, true
}

// Readable fires when the ring goes from empty to non-empty.
func (r *Ring) Readable() <-chan struct{} { return r.readable }
