package charset

import (
	"bytes"
	"io"
	"strings"
)

// ByteSink consumes the byte fragments produced by a chunked encode session.
//
// Implementations must reject Add after Close and tolerate repeated Close
// calls. The sink must not retain the fragment slice beyond the call.
type ByteSink interface {
	// Add consumes one fragment.
	Add(p []byte) error

	// Close finalizes the sink. Idempotent.
	Close() error
}

// TextSink consumes the text fragments produced by a chunked decode session.
// The close contract matches ByteSink.
type TextSink interface {
	Add(s string) error
	Close() error
}

// Buffer is an in-memory ByteSink. The zero value is ready to use.
type Buffer struct {
	buf    bytes.Buffer
	closed bool
}

// Add appends the fragment to the buffer.
func (b *Buffer) Add(p []byte) error {
	if b.closed {
		return ErrSinkClosed
	}
	b.buf.Write(p)
	return nil
}

// Close marks the buffer closed. Idempotent.
func (b *Buffer) Close() error {
	b.closed = true
	return nil
}

// Bytes returns the accumulated fragments.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Builder is an in-memory TextSink. The zero value is ready to use.
type Builder struct {
	sb     strings.Builder
	closed bool
}

// Add appends the fragment.
func (b *Builder) Add(s string) error {
	if b.closed {
		return ErrSinkClosed
	}
	b.sb.WriteString(s)
	return nil
}

// Close marks the builder closed. Idempotent.
func (b *Builder) Close() error {
	b.closed = true
	return nil
}

// String returns the accumulated fragments.
func (b *Builder) String() string {
	return b.sb.String()
}

// writerSink adapts an io.Writer into a ByteSink.
type writerSink struct {
	w      io.Writer
	closed bool
}

// WriterSink wraps w as a ByteSink. Close closes w if it implements
// io.Closer; otherwise it only marks the sink closed.
func WriterSink(w io.Writer) ByteSink {
	return &writerSink{w: w}
}

func (s *writerSink) Add(p []byte) error {
	if s.closed {
		return ErrSinkClosed
	}
	_, err := s.w.Write(p)
	return err
}

func (s *writerSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
