// Package split tears a bidirectional endpoint, composed of a read-capable
// value and a write-capable value, into two independently owned halves that
// can be verified as a pair and recombined into the original endpoint.
package split

// pairKey is the identity marker shared by the two halves of one Split call.
// Keys are compared by address, never by value; the blank byte keeps the
// struct non-zero-sized so that every allocation is a distinct address.
type pairKey struct{ _ byte }

// Splittable couples a read-capable value R and a write-capable value W into
// a single bidirectional endpoint. Splitting hands each side to its own
// half, so that one goroutine can drive reads while another drives writes,
// and a matching pair of halves can later be reassembled with Unsplit.
//
// Split is a consuming operation. Go cannot enforce moves at compile time,
// so a split Splittable panics on any further use.
type Splittable[R, W any] struct {
	r     R
	w     W
	spent bool
}

// New couples r and w. It performs no validation and no I/O.
func New[R, W any](r R, w W) *Splittable[R, W] {
	return &Splittable[R, W]{r: r, w: w}
}

// Reader returns the read side of an unsplit Splittable.
func (s *Splittable[R, W]) Reader() R {
	if s.spent {
		panic("split: use of a split Splittable")
	}

	return s.r
}

// Writer returns the write side of an unsplit Splittable.
func (s *Splittable[R, W]) Writer() W {
	if s.spent {
		panic("split: use of a split Splittable")
	}

	return s.w
}

// Split consumes the Splittable, transferring its read side into a ReadHalf
// and its write side into a WriteHalf. The two halves share one freshly
// allocated pair key and nothing else, so they are free to live on different
// goroutines without synchronization.
func (s *Splittable[R, W]) Split() (*ReadHalf[R, W], *WriteHalf[R, W]) {
	if s.spent {
		panic("split: Splittable already split")
	}

	key := &pairKey{}
	r := &ReadHalf[R, W]{key: key, r: s.r}
	w := &WriteHalf[R, W]{key: key, w: s.w}

	var (
		zeroR R
		zeroW W
	)

	s.r, s.w = zeroR, zeroW
	s.spent = true

	return r, w
}

// ReadHalf owns the read side of a split Splittable, plus a shared reference
// to the pair key proving which WriteHalf it belongs with.
type ReadHalf[R, W any] struct {
	key *pairKey
	r   R
}

// Reader returns the owned read side.
func (h *ReadHalf[R, W]) Reader() R {
	if h.key == nil {
		panic("split: use of a spent ReadHalf")
	}

	return h.r
}

// IsPairOf reports whether h and w were produced by the same Split call.
// The comparison is identity of the shared key, so halves of two distinct
// splits never match, no matter how equal their contents are. A half spent
// by Unsplit pairs with nothing.
func (h *ReadHalf[R, W]) IsPairOf(w *WriteHalf[R, W]) bool {
	return h.key != nil && h.key == w.key
}

// Unsplit reassembles the original Splittable from a matching pair of
// halves, consuming both and dropping their shared key. Recombining halves
// from two different splits is a caller bug, and Unsplit panics rather than
// produce a crossed endpoint.
func (h *ReadHalf[R, W]) Unsplit(w *WriteHalf[R, W]) *Splittable[R, W] {
	switch {
	case h.key == nil:
		panic("split: use of a spent ReadHalf")
	case w.key == nil:
		panic("split: use of a spent WriteHalf")
	case h.key != w.key:
		panic("split: not a pair")
	}

	s := New(h.r, w.w)

	var (
		zeroR R
		zeroW W
	)

	h.r, w.w = zeroR, zeroW
	h.key, w.key = nil, nil

	return s
}

// WriteHalf owns the write side of a split Splittable, plus a shared
// reference to the same pair key as its sibling ReadHalf.
type WriteHalf[R, W any] struct {
	key *pairKey
	w   W
}

// Writer returns the owned write side.
func (h *WriteHalf[R, W]) Writer() W {
	if h.key == nil {
		panic("split: use of a spent WriteHalf")
	}

	return h.w
}

// IsPairOf reports whether h and r were produced by the same Split call.
func (h *WriteHalf[R, W]) IsPairOf(r *ReadHalf[R, W]) bool {
	return r.IsPairOf(h)
}

// Unsplit reassembles the original Splittable from a matching pair of
// halves. It is the mirror of ReadHalf.Unsplit and applies the same pairing
// check.
func (h *WriteHalf[R, W]) Unsplit(r *ReadHalf[R, W]) *Splittable[R, W] {
	return r.Unsplit(h)
}
