package charset

// Encoder converts text to the restricted byte subset defined by its mask.
//
// Encoders are immutable and safe for concurrent use. Encoding has no
// lenient mode: a code unit outside the mask always fails, regardless of
// any decode policy.
type Encoder struct {
	mask Mask
}

// NewEncoder returns an encoder for the given subset mask.
func NewEncoder(mask Mask) *Encoder {
	return &Encoder{mask: mask}
}

// Mask returns the encoder's subset mask.
func (e *Encoder) Mask() Mask {
	return e.mask
}

// Bytes converts the whole string.
func (e *Encoder) Bytes(s string) ([]byte, error) {
	return e.Convert(s, 0, len(s))
}

// Convert converts the half-open byte range s[start:end].
//
// The whole range is validated before anything is produced: the first rune
// outside the mask fails the call with a CharacterError and no bytes are
// returned. A range boundary that cuts a multi-byte rune is likewise a
// CharacterError, since the orphaned bytes do not form a valid code unit.
// The result holds one byte per rune.
func (e *Encoder) Convert(s string, start, end int) ([]byte, error) {
	if err := checkRange(start, end, len(s)); err != nil {
		return nil, err
	}
	return e.convert(s[start:end], start)
}

// convert validates src in full, then produces the converted bytes.
// base is the offset of src within the original input, for error indices.
// An invalid UTF-8 sequence in src surfaces as a CharacterError carrying
// utf8.RuneError.
func (e *Encoder) convert(src string, base int) ([]byte, error) {
	for i, r := range src {
		if !e.mask.contains(r) {
			return nil, newCharacterError(r, base+i)
		}
	}
	out := make([]byte, 0, len(src))
	for _, r := range src {
		out = append(out, byte(r))
	}
	return out, nil
}

// StartChunkedConversion begins a chunked encode session forwarding
// converted fragments to out. The session owns out until it is closed; no
// other writer may use out while the session is open.
func (e *Encoder) StartChunkedConversion(out ByteSink) *EncodeSink {
	emitSessionStart(e.mask.String(), directionEncode)
	return &EncodeSink{enc: e, out: out}
}
