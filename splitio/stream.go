// Package splitio applies the split package's pairing contract to standard
// library byte streams, so that one half of a connection-like value can be
// read on one goroutine while the other half is written on another.
package splitio

import (
	"errors"
	"io"

	split "github.com/wugren/sfo-split"
	"github.com/zalgonoise/cfg"
)

var (
	_ io.ReadWriteCloser = (*Stream[io.Reader, io.Writer])(nil)
	_ io.ReadCloser      = (*ReadStream[io.Reader, io.Writer])(nil)
	_ io.WriteCloser     = (*WriteStream[io.Reader, io.Writer])(nil)
)

// Stream couples an io.Reader and an io.Writer as one bidirectional
// byte-stream endpoint. Reads, writes and closes are forwarded unchanged to
// the wrapped values; the Stream adds no buffering and rewrites no errors.
type Stream[R io.Reader, W io.Writer] struct {
	inner *split.Splittable[R, W]
	conf  Config
}

// New couples r and w.
//
// Streams can be configured with a custom close policy (via WithCloser).
func New[R io.Reader, W io.Writer](r R, w W, opts ...cfg.Option[Config]) *Stream[R, W] {
	return &Stream[R, W]{
		inner: split.New(r, w),
		conf:  cfg.Set(defaultConfig(), opts...),
	}
}

// Read forwards to the read side.
func (s *Stream[R, W]) Read(p []byte) (n int, err error) {
	return s.inner.Reader().Read(p)
}

// Write forwards to the write side.
func (s *Stream[R, W]) Write(p []byte) (n int, err error) {
	return s.inner.Writer().Write(p)
}

// Close applies the configured close policy. With none set, it closes the
// write side and then the read side, for each side that implements
// io.Closer, joining their errors.
func (s *Stream[R, W]) Close() error {
	if s.conf.closer != nil {
		return s.conf.closer()
	}

	return errors.Join(
		closeSide(s.inner.Writer()),
		closeSide(s.inner.Reader()),
	)
}

// Split consumes the Stream, tearing it into an independently owned
// ReadStream and WriteStream that may live on different goroutines.
func (s *Stream[R, W]) Split() (*ReadStream[R, W], *WriteStream[R, W]) {
	r, w := s.inner.Split()

	return &ReadStream[R, W]{half: r, conf: s.conf},
		&WriteStream[R, W]{half: w, conf: s.conf}
}

// ReadStream is the read side of a split Stream.
type ReadStream[R io.Reader, W io.Writer] struct {
	half *split.ReadHalf[R, W]
	conf Config
}

// Read forwards to the owned read side.
func (r *ReadStream[R, W]) Read(p []byte) (n int, err error) {
	return r.half.Reader().Read(p)
}

// Close closes the read side if it implements io.Closer. The write side, if
// still live elsewhere, stays open.
func (r *ReadStream[R, W]) Close() error {
	return closeSide(r.half.Reader())
}

// IsPairOf reports whether r and w came from the same Split call.
func (r *ReadStream[R, W]) IsPairOf(w *WriteStream[R, W]) bool {
	return r.half.IsPairOf(w.half)
}

// Unsplit reassembles the Stream from a matching pair of halves, restoring
// its configured close policy. Recombining halves of two different Streams
// panics.
func (r *ReadStream[R, W]) Unsplit(w *WriteStream[R, W]) *Stream[R, W] {
	return &Stream[R, W]{
		inner: r.half.Unsplit(w.half),
		conf:  r.conf,
	}
}

// WriteStream is the write side of a split Stream.
type WriteStream[R io.Reader, W io.Writer] struct {
	half *split.WriteHalf[R, W]
	conf Config
}

// Write forwards to the owned write side.
func (w *WriteStream[R, W]) Write(p []byte) (n int, err error) {
	return w.half.Writer().Write(p)
}

// Close closes the write side if it implements io.Closer. The read side, if
// still live elsewhere, stays open.
func (w *WriteStream[R, W]) Close() error {
	return closeSide(w.half.Writer())
}

// IsPairOf reports whether w and r came from the same Split call.
func (w *WriteStream[R, W]) IsPairOf(r *ReadStream[R, W]) bool {
	return r.IsPairOf(w)
}

// Unsplit reassembles the Stream from a matching pair of halves.
func (w *WriteStream[R, W]) Unsplit(r *ReadStream[R, W]) *Stream[R, W] {
	return r.Unsplit(w)
}

func closeSide(v any) error {
	if c, ok := v.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
