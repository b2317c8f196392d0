// Package charset converts between Unicode text and restricted byte
// subsets (7-bit US-ASCII and 8-bit ISO-8859-1 / Latin-1).
//
// Within a subset the mapping is bit-exact: byte value b encodes code unit
// b and vice versa, one byte per code unit. The package offers one-shot
// conversion through a Codec and incremental conversion through chunked
// sinks that accept fragment sequences and forward converted fragments to
// a caller-supplied downstream sink.
//
// # Policies
//
// Decoding supports two validation policies:
//
//   - Strict: a byte outside the subset fails with a ByteError
//   - ReplaceInvalid: each byte outside the subset becomes U+FFFD
//
// Encoding is always strict. A character outside the subset fails with a
// CharacterError regardless of policy.
//
// # Basic Usage
//
//	ascii := charset.NewASCII()
//
//	data, err := ascii.Encode("This is ASCII!")
//	text, err := ascii.Decode(data)
//
//	// Lossy decode of untrusted bytes
//	text, _ = ascii.Decode([]byte{0x80}, charset.AllowInvalid()) // "�"
//
// # Chunked Conversion
//
//	var buf charset.Buffer
//	sink := ascii.Encoder().StartChunkedConversion(&buf)
//	sink.Add("This is ", false)
//	sink.Add("ASCII!", true) // final fragment closes the session
//
// Fragment boundaries may split a multi-byte UTF-8 rune; the encode sink
// carries the partial sequence into the next fragment, so any split of a
// string converts to the same bytes as a one-shot encode.
package charset

import "time"

// Codec binds an encoder and decoder for one subset under a canonical name
// and a default decode policy. Codecs are immutable and safe for
// concurrent use.
type Codec struct {
	name    string
	mask    Mask
	policy  Policy
	enc     *Encoder
	strict  *Decoder
	replace *Decoder
}

// Option configures a Codec at construction.
type Option func(*Codec)

// WithPolicy sets the codec's default decode policy. The default is Strict.
func WithPolicy(p Policy) Option {
	return func(c *Codec) {
		c.policy = p
	}
}

// DecodeOption overrides the codec's default policy for a single Decode
// call.
type DecodeOption func(*Policy)

// AllowInvalid decodes with ReplaceInvalid for this call.
func AllowInvalid() DecodeOption {
	return func(p *Policy) {
		*p = ReplaceInvalid
	}
}

// DecodePolicy decodes with the given policy for this call.
func DecodePolicy(p Policy) DecodeOption {
	return func(dst *Policy) {
		*dst = p
	}
}

// NewASCII returns the US-ASCII codec.
func NewASCII(opts ...Option) *Codec {
	return newCodec(MaskASCII, opts...)
}

// NewLatin1 returns the ISO-8859-1 codec.
func NewLatin1(opts ...Option) *Codec {
	return newCodec(MaskLatin1, opts...)
}

// newCodec builds a codec with both decoder policies pre-constructed, so
// per-call policy resolution allocates nothing.
func newCodec(mask Mask, opts ...Option) *Codec {
	c := &Codec{
		name:    mask.String(),
		mask:    mask,
		policy:  Strict,
		enc:     NewEncoder(mask),
		strict:  NewDecoder(mask, Strict),
		replace: NewDecoder(mask, ReplaceInvalid),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the canonical charset name.
func (c *Codec) Name() string {
	return c.name
}

// Mask returns the codec's subset mask.
func (c *Codec) Mask() Mask {
	return c.mask
}

// Policy returns the codec's default decode policy.
func (c *Codec) Policy() Policy {
	return c.policy
}

// Encoder returns the codec's encoder. The encoder is stateless and may be
// shared.
func (c *Codec) Encoder() *Encoder {
	return c.enc
}

// Decoder returns the codec's decoder for its default policy. The decoder
// is stateless and may be shared.
func (c *Codec) Decoder() *Decoder {
	return c.decoderFor(c.policy)
}

// decoderFor resolves a policy to one of the pre-built decoders.
func (c *Codec) decoderFor(p Policy) *Decoder {
	if p == ReplaceInvalid {
		return c.replace
	}
	return c.strict
}

// Encode converts s to subset bytes.
func (c *Codec) Encode(s string) ([]byte, error) {
	start := time.Now()
	out, err := c.enc.Bytes(s)
	emitEncodeComplete(c.name, len(out), time.Since(start), err)
	return out, err
}

// Decode converts subset bytes to text. The policy is the codec default
// unless a DecodeOption overrides it for this call.
func (c *Codec) Decode(p []byte, opts ...DecodeOption) (string, error) {
	policy := c.policy
	for _, opt := range opts {
		opt(&policy)
	}
	start := time.Now()
	s, err := c.decoderFor(policy).Text(p)
	emitDecodeComplete(c.name, len(p), time.Since(start), err)
	return s, err
}
