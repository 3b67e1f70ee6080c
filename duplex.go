package split

import (
	"github.com/zalgonoise/gio"
)

// Duplex couples a gio.Reader[T] and a gio.Writer[T] as one bidirectional
// generic endpoint, implementing gio.ReadWriter[T] by pure delegation: no
// buffering, no error translation, and no completion semantics of its own.
type Duplex[T any] struct {
	inner *Splittable[gio.Reader[T], gio.Writer[T]]
}

// NewDuplex couples r and w.
func NewDuplex[T any](r gio.Reader[T], w gio.Writer[T]) *Duplex[T] {
	return &Duplex[T]{
		inner: New(r, w),
	}
}

// Read forwards to the read side unchanged.
func (d *Duplex[T]) Read(p []T) (n int, err error) {
	return d.inner.Reader().Read(p)
}

// Write forwards to the write side unchanged.
func (d *Duplex[T]) Write(p []T) (n int, err error) {
	return d.inner.Writer().Write(p)
}

// Split consumes the Duplex, tearing it into an independently owned
// DuplexReader and DuplexWriter that share one pair key.
func (d *Duplex[T]) Split() (*DuplexReader[T], *DuplexWriter[T]) {
	r, w := d.inner.Split()

	return &DuplexReader[T]{half: r}, &DuplexWriter[T]{half: w}
}

// DuplexReader is the read side of a split Duplex. It implements
// gio.Reader[T].
type DuplexReader[T any] struct {
	half *ReadHalf[gio.Reader[T], gio.Writer[T]]
}

// Read forwards to the owned read side unchanged.
func (r *DuplexReader[T]) Read(p []T) (n int, err error) {
	return r.half.Reader().Read(p)
}

// IsPairOf reports whether r and w came from the same Split call.
func (r *DuplexReader[T]) IsPairOf(w *DuplexWriter[T]) bool {
	return r.half.IsPairOf(w.half)
}

// Unsplit reassembles the Duplex from a matching pair of halves, consuming
// both. Mismatched halves panic, as in ReadHalf.Unsplit.
func (r *DuplexReader[T]) Unsplit(w *DuplexWriter[T]) *Duplex[T] {
	return &Duplex[T]{inner: r.half.Unsplit(w.half)}
}

// DuplexWriter is the write side of a split Duplex. It implements
// gio.Writer[T].
type DuplexWriter[T any] struct {
	half *WriteHalf[gio.Reader[T], gio.Writer[T]]
}

// Write forwards to the owned write side unchanged.
func (w *DuplexWriter[T]) Write(p []T) (n int, err error) {
	return w.half.Writer().Write(p)
}

// IsPairOf reports whether w and r came from the same Split call.
func (w *DuplexWriter[T]) IsPairOf(r *DuplexReader[T]) bool {
	return r.IsPairOf(w)
}

// Unsplit reassembles the Duplex from a matching pair of halves.
func (w *DuplexWriter[T]) Unsplit(r *DuplexReader[T]) *Duplex[T] {
	return r.Unsplit(w)
}
