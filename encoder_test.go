package charset_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zoobzio/charset"
)

func TestEncoder_Bytes_ASCII(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskASCII)

	got, err := enc.Bytes("This is ASCII!")
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	want := []byte{0x54, 0x68, 0x69, 0x73, 0x20, 0x69, 0x73, 0x20, 0x41, 0x53, 0x43, 0x49, 0x49, 0x21}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %#v, want %#v", got, want)
	}
}

func TestEncoder_Bytes_Latin1(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskLatin1)

	// "café" is 5 UTF-8 bytes but 4 code units; output is one byte per rune.
	got, err := enc.Bytes("café")
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	want := []byte{0x63, 0x61, 0x66, 0xe9}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %#v, want %#v", got, want)
	}
}

func TestEncoder_Bytes_InvalidCharacter(t *testing.T) {
	tests := []struct {
		name string
		mask charset.Mask
		in   string
	}{
		{name: "ascii rejects latin letter", mask: charset.MaskASCII, in: "café"},
		{name: "ascii rejects replacement char", mask: charset.MaskASCII, in: "�"},
		{name: "latin1 rejects euro sign", mask: charset.MaskLatin1, in: "price: €5"},
		{name: "latin1 rejects emoji", mask: charset.MaskLatin1, in: "ok 👍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := charset.NewEncoder(tt.mask).Bytes(tt.in)
			if !errors.Is(err, charset.ErrInvalidCharacter) {
				t.Errorf("Bytes(%q) error = %v, want ErrInvalidCharacter", tt.in, err)
			}
		})
	}
}

func TestEncoder_Bytes_CharacterErrorDetail(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskASCII)

	_, err := enc.Bytes("abé")

	var cerr *charset.CharacterError
	if !errors.As(err, &cerr) {
		t.Fatalf("Bytes() error = %v, want CharacterError", err)
	}
	if cerr.Rune != 'é' {
		t.Errorf("CharacterError.Rune = %q, want 'é'", cerr.Rune)
	}
	if cerr.Index != 2 {
		t.Errorf("CharacterError.Index = %d, want 2", cerr.Index)
	}
}

func TestEncoder_Convert_Range(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskASCII)

	got, err := enc.Convert("hello", 1, 4)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !bytes.Equal(got, []byte("ell")) {
		t.Errorf("Convert() = %q, want %q", got, "ell")
	}
}

func TestEncoder_Convert_RangeError(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskASCII)

	tests := []struct {
		name  string
		start int
		end   int
	}{
		{name: "end past length", start: 2, end: 10},
		{name: "negative start", start: -1, end: 3},
		{name: "end before start", start: 4, end: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Convert("hello", tt.start, tt.end)
			if !errors.Is(err, charset.ErrRange) {
				t.Errorf("Convert(%d, %d) error = %v, want ErrRange", tt.start, tt.end, err)
			}
		})
	}
}

func TestEncoder_Convert_SplitRuneBoundary(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskLatin1)

	// len("é") == 2; a range ending inside the rune leaves orphaned bytes.
	_, err := enc.Convert("é", 0, 1)
	if !errors.Is(err, charset.ErrInvalidCharacter) {
		t.Errorf("Convert() error = %v, want ErrInvalidCharacter", err)
	}
}

func TestEncoder_Convert_AllOrNothing(t *testing.T) {
	enc := charset.NewEncoder(charset.MaskASCII)

	got, err := enc.Convert("ab€cd", 0, len("ab€cd"))
	if err == nil {
		t.Fatal("Convert() should fail on invalid character")
	}
	if got != nil {
		t.Errorf("Convert() returned %#v on failure, want nil", got)
	}
}
