package charset

import "testing"

func TestIncompleteTail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "abc", want: 0},
		{name: "complete two byte rune", in: "café", want: 0},
		{name: "lone leader", in: "caf\xc3", want: 1},
		{name: "three byte leader only", in: "ab\xe2", want: 1},
		{name: "three byte rune missing last", in: "ab\xe2\x82", want: 2},
		{name: "four byte rune missing last", in: "a\xf0\x9f\x91", want: 3},
		{name: "complete three byte rune", in: "ab\xe2\x82\xac", want: 0},
		{name: "stray continuation byte", in: "ab\x82", want: 0},
		{name: "only continuation bytes", in: "\x82\x82\x82\x82\x82", want: 0},
		{name: "lone leader is whole input", in: "\xc3", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := incompleteTail(tt.in); got != tt.want {
				t.Errorf("incompleteTail(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
