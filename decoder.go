package charset

import "strings"

// ReplacementChar is substituted for each invalid byte under ReplaceInvalid.
const ReplacementChar = '\uFFFD'

// Policy selects how a decoder treats bytes outside the subset mask.
type Policy int

const (
	// Strict rejects any byte outside the mask with a ByteError.
	Strict Policy = iota

	// ReplaceInvalid substitutes ReplacementChar for each byte outside the
	// mask and continues.
	ReplaceInvalid
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case ReplaceInvalid:
		return "replace-invalid"
	default:
		return "unknown"
	}
}

// Decoder converts restricted subset bytes to text.
//
// Decoders are immutable and safe for concurrent use. Every byte maps to
// exactly one code unit, so decoding carries no state between calls.
type Decoder struct {
	mask   Mask
	policy Policy
}

// NewDecoder returns a decoder for the given mask and policy.
func NewDecoder(mask Mask, policy Policy) *Decoder {
	return &Decoder{mask: mask, policy: policy}
}

// Mask returns the decoder's subset mask.
func (d *Decoder) Mask() Mask {
	return d.mask
}

// Policy returns the decoder's validation policy.
func (d *Decoder) Policy() Policy {
	return d.policy
}

// Text converts the whole slice.
func (d *Decoder) Text(p []byte) (string, error) {
	return d.Convert(p, 0, len(p))
}

// Convert converts the half-open range p[start:end].
//
// Under Strict, the first byte outside the mask fails the call with a
// ByteError identifying the byte and its index into p, and no text is
// returned. Under ReplaceInvalid, conversion is total: each invalid byte
// becomes ReplacementChar.
func (d *Decoder) Convert(p []byte, start, end int) (string, error) {
	if err := checkRange(start, end, len(p)); err != nil {
		return "", err
	}
	var sb strings.Builder
	if _, err := d.convert(p[start:end], start, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// convert decodes src into sb and returns the number of replacements made.
// base is the offset of src within the original input, for error indices.
func (d *Decoder) convert(src []byte, base int, sb *strings.Builder) (int, error) {
	sb.Grow(len(src))
	replaced := 0
	for i, b := range src {
		if d.mask.contains(rune(b)) {
			sb.WriteRune(rune(b))
			continue
		}
		if d.policy == Strict {
			return replaced, newByteError(b, base+i)
		}
		sb.WriteRune(ReplacementChar)
		replaced++
	}
	return replaced, nil
}

// StartChunkedConversion begins a chunked decode session forwarding
// converted fragments to out. The session owns out until it is closed; no
// other writer may use out while the session is open.
func (d *Decoder) StartChunkedConversion(out TextSink) *DecodeSink {
	emitSessionStart(d.mask.String(), directionDecode)
	return &DecodeSink{dec: d, out: out}
}
