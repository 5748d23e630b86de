package swiftscan

import "encoding/binary"

// SWAR escape detection: eight bytes are checked per step inside one 64-bit
// word. A byte needs escaping in a JSON string when it is a control character
// (< 32), a quote (34), or a backslash (92). Each check turns "byte matches"
// into "bit 7 set" so the three results can be combined with OR; the ASCII
// mask filters bytes whose high bit was already set, since the subtraction
// tricks only hold for values below 128.
const (
	swarHighBits = 0x8080808080808080
	swarOnes     = 0x0101010101010101
	swarSpaces   = 0x2020202020202020
	swarQuotes   = 0x2222222222222222
	swarSlashes  = 0x5C5C5C5C5C5C5C5C
)

// NeedsEscape reports whether b must be escaped inside a JSON string.
func NeedsEscape(b byte) bool {
	return b < 32 || b == '"' || b == '\\'
}

// HasEscapable reports whether any byte in data must be escaped inside a JSON
// string. The bulk of the input is processed eight bytes at a time.
func HasEscapable(data []byte) bool {
	i := 0
	for ; i+8 <= len(data); i += 8 {
		if hasEscapableWord(binary.LittleEndian.Uint64(data[i:])) {
			return true
		}
	}
	for ; i < len(data); i++ {
		if NeedsEscape(data[i]) {
			return true
		}
	}
	return false
}

// hasEscapableWord reports whether any of the eight packed bytes needs escaping.
func hasEscapableWord(x uint64) bool {
	isASCII := swarHighBits &^ x
	lt32 := x - swarSpaces
	eq34 := (x ^ swarQuotes) - swarOnes
	eq92 := (x ^ swarSlashes) - swarOnes
	return (lt32|eq34|eq92)&isASCII != 0
}

// hasEscapableScalar is the byte-at-a-time reference the SWAR path is
// validated against.
func hasEscapableScalar(data []byte) bool {
	for _, b := range data {
		if NeedsEscape(b) {
			return true
		}
	}
	return false
}
