package charset

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrRange indicates a start/end pair outside the source bounds.
	ErrRange = errors.New("range out of bounds")

	// ErrInvalidCharacter indicates an encode-time code unit outside the
	// subset mask. Encoding has no lenient mode, so this error is not
	// affected by the decode policy.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidByte indicates a decode-time byte outside the subset mask
	// under the Strict policy.
	ErrInvalidByte = errors.New("invalid byte")

	// ErrSinkClosed indicates a fragment was submitted to a closed sink.
	ErrSinkClosed = errors.New("sink closed")
)

// RangeError reports an invalid start/end pair for a conversion call.
type RangeError struct {
	Start  int // requested range start
	End    int // requested range end
	Length int // length of the source
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range out of bounds: [%d:%d] with length %d", e.Start, e.End, e.Length)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// CharacterError reports a code unit that cannot be encoded into the subset.
type CharacterError struct {
	Rune  rune // offending code unit
	Index int  // byte offset: into the source for one-shot calls, into the concatenated session input for chunked calls
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at index %d", e.Rune, e.Index)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// ByteError reports a byte that cannot be decoded under the Strict policy.
type ByteError struct {
	Byte  byte // offending byte
	Index int  // byte offset: into the source for one-shot calls, into the concatenated session input for chunked calls
}

func (e *ByteError) Error() string {
	return fmt.Sprintf("invalid byte 0x%02X at index %d", e.Byte, e.Index)
}

func (e *ByteError) Unwrap() error {
	return ErrInvalidByte
}

// newRangeError creates a RangeError for an out-of-bounds range.
func newRangeError(start, end, length int) error {
	return &RangeError{Start: start, End: end, Length: length}
}

// newCharacterError creates a CharacterError for an unencodable code unit.
func newCharacterError(r rune, index int) error {
	return &CharacterError{Rune: r, Index: index}
}

// newByteError creates a ByteError for an undecodable byte.
func newByteError(b byte, index int) error {
	return &ByteError{Byte: b, Index: index}
}

// checkRange validates a half-open [start:end) range against length.
func checkRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return newRangeError(start, end, length)
	}
	return nil
}
