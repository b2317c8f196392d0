package charset

// Mask is a bitmask defining the inclusive range of code units a subset
// encoding can represent. A code unit u is representable iff u &^ mask == 0.
type Mask byte

const (
	// MaskASCII admits the 7-bit range U+0000 through U+007F.
	MaskASCII Mask = 0x7f

	// MaskLatin1 admits the 8-bit range U+0000 through U+00FF.
	MaskLatin1 Mask = 0xff
)

// contains reports whether r falls inside the mask's range.
func (m Mask) contains(r rune) bool {
	return r&^rune(m) == 0
}

// String returns the canonical charset name for the mask.
func (m Mask) String() string {
	switch m {
	case MaskASCII:
		return "us-ascii"
	case MaskLatin1:
		return "iso-8859-1"
	default:
		return "unknown"
	}
}
