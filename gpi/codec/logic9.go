// Package codec implements the value representations shared by every
// backend (spec.md §4.G): the 9-valued logic alphabet, binstr<->integer
// conversion, and the VHDL force-string construction. None of this
// package touches a native API; backends call it from their GetBinstr/
// SetBinstr/GetLong/SetLong implementations.
package codec

import (
	"fmt"
	"strings"
)

// Alphabet is the canonical 9-valued logic character set, most
// significant bit represented leftmost in any binstr this package
// produces or accepts.
const Alphabet = "01XZUWLH-"

// IsValidBit reports whether c is one of the nine logic characters.
func IsValidBit(c byte) bool {
	return strings.IndexByte(Alphabet, c) >= 0
}

// ValidateBinstr reports whether every character of s is a valid logic
// bit. An empty string is invalid.
func ValidateBinstr(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsValidBit(s[i]) {
			return false
		}
	}
	return true
}

// IntToBinstr renders v's low width bits as a binstr, MSB-first: each
// set bit becomes '1', each clear bit becomes '0' (spec.md §4.G).
func IntToBinstr(v int64, width int) string {
	buf := make([]byte, width)
	for i := 0; i < width; i++ {
		bitIndex := width - 1 - i
		if v&(1<<uint(bitIndex)) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// BinstrToInt maps a binstr to its integer value: '1'/'H' contribute 1,
// '0'/'L' contribute 0, and every other logic character is preserved in
// the binstr representation but also contributes 0 here (spec.md §4.G).
func BinstrToInt(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		v <<= 1
		switch s[i] {
		case '1', 'H':
			v |= 1
		}
	}
	return v
}

// NormalizeWidth left-pads or truncates s to exactly width characters,
// preserving MSB-first order, using fill for any added high bits.
func NormalizeWidth(s string, width int, fill byte) (string, error) {
	if len(s) == width {
		return s, nil
	}
	if len(s) > width {
		return s[len(s)-width:], nil
	}
	if !IsValidBit(fill) {
		return "", fmt.Errorf("codec: invalid fill bit %q", fill)
	}
	return strings.Repeat(string(fill), width-len(s)) + s, nil
}
