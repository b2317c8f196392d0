package charset

import (
	"strings"
	"unicode/utf8"
)

// EncodeSink is a stateful sink for a chunked encode session.
//
// A session accepts an ordered sequence of text fragments and forwards the
// converted byte fragments downstream in submission order. Fragment
// boundaries may cut a multi-byte rune: the dangling tail bytes are carried
// into the next fragment, so splitting a string at any byte offset converts
// to the same downstream bytes as a one-shot encode.
//
// A sink is owned by a single caller for its session and is not safe for
// concurrent use.
type EncodeSink struct {
	enc    *Encoder
	out    ByteSink
	carry  [utf8.UTFMax - 1]byte
	ncarry int
	pos    int // logical input bytes converted so far; error indices are relative to this stream
	nfrag  int
	closed bool
}

// Add submits the whole fragment. If last is true the session is closed
// after the fragment is forwarded.
func (s *EncodeSink) Add(src string, last bool) error {
	return s.AddSlice(src, 0, len(src), last)
}

// AddSlice submits src[start:end] as one fragment.
//
// The fragment, prefixed by any carried bytes, is validated in full before
// anything is forwarded: on a CharacterError nothing is emitted and no
// input is consumed for this call. A trailing incomplete UTF-8 sequence is
// held as carry for the next fragment unless last is true, in which case
// it fails the call. Submitting to a closed session returns ErrSinkClosed.
func (s *EncodeSink) AddSlice(src string, start, end int, last bool) error {
	if s.closed {
		return ErrSinkClosed
	}
	if err := checkRange(start, end, len(src)); err != nil {
		return err
	}
	full := string(s.carry[:s.ncarry]) + src[start:end]
	tail := 0
	if !last {
		tail = incompleteTail(full)
	}
	body := full[:len(full)-tail]
	converted, err := s.enc.convert(body, s.pos)
	if err != nil {
		return err
	}
	s.ncarry = copy(s.carry[:], full[len(full)-tail:])
	s.pos += len(body)
	s.nfrag++
	if err := s.out.Add(converted); err != nil {
		return err
	}
	if last {
		return s.Close()
	}
	return nil
}

// Close ends the session and closes the downstream sink. Idempotent.
// Closing with carried bytes of an unfinished rune is a CharacterError;
// the downstream sink is still closed.
func (s *EncodeSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	emitSessionClose(s.enc.mask.String(), directionEncode, s.nfrag, 0)
	err := s.out.Close()
	if s.ncarry > 0 {
		return newCharacterError(utf8.RuneError, s.pos)
	}
	return err
}

// incompleteTail returns the number of trailing bytes of s that begin a
// multi-byte UTF-8 sequence the string does not finish. Malformed trailing
// bytes that can never be completed count as zero and are left for
// validation to report.
func incompleteTail(s string) int {
	start := len(s)
	for i := 0; i < utf8.UTFMax && start > 0; i++ {
		start--
		if utf8.RuneStart(s[start]) {
			if !utf8.FullRuneInString(s[start:]) {
				return len(s) - start
			}
			return 0
		}
	}
	return 0
}

// DecodeSink is a stateful sink for a chunked decode session.
//
// Decoding is fixed-width, so no partial unit is ever carried between
// fragments. Under the Strict policy a failed fragment ends the session:
// the error is recorded and every later submission returns it. Downstream
// keeps everything forwarded before the failure; nothing from the failing
// call is forwarded.
//
// A sink is owned by a single caller for its session and is not safe for
// concurrent use.
type DecodeSink struct {
	dec      *Decoder
	out      TextSink
	pos      int // logical input bytes converted so far; error indices are relative to this stream
	nfrag    int
	replaced int
	failed   error
	closed   bool
}

// Add submits the whole fragment. If last is true the session is closed
// after the fragment is forwarded.
func (s *DecodeSink) Add(p []byte, last bool) error {
	return s.AddSlice(p, 0, len(p), last)
}

// AddSlice submits p[start:end] as one fragment.
//
// The slice is validated and converted in full before anything is
// forwarded, so chunked strict decoding fails exactly where the one-shot
// Convert would. Submitting to a closed session returns ErrSinkClosed;
// submitting after a strict failure returns the original error.
func (s *DecodeSink) AddSlice(p []byte, start, end int, last bool) error {
	if s.closed {
		return ErrSinkClosed
	}
	if s.failed != nil {
		return s.failed
	}
	if err := checkRange(start, end, len(p)); err != nil {
		return err
	}
	var sb strings.Builder
	replaced, err := s.dec.convert(p[start:end], s.pos, &sb)
	if err != nil {
		s.failed = err
		return err
	}
	s.pos += end - start
	s.replaced += replaced
	s.nfrag++
	if err := s.out.Add(sb.String()); err != nil {
		return err
	}
	if last {
		return s.Close()
	}
	return nil
}

// Close ends the session and closes the downstream sink. Idempotent.
func (s *DecodeSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	emitSessionClose(s.dec.mask.String(), directionDecode, s.nfrag, s.replaced)
	return s.out.Close()
}
