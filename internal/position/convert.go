package position

import "math"

// Protocol coordinates are zero-indexed (LSP); the local editing surface is
// one-indexed. These two functions are exact inverses for every in-range
// value.

// OneIndexed converts a zero-indexed protocol coordinate to one-indexed local
// addressing.
func OneIndexed(n uint32) int {
	return int(n) + 1
}

// ZeroIndexed converts a one-indexed local coordinate back to the zero-indexed
// protocol form. Values below 1 clamp to 0.
func ZeroIndexed(n int) uint32 {
	if n <= 1 {
		return 0
	}
	if n-1 > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n - 1)
}

// LocalColumn converts a zero-indexed UTF-16 character offset within lineText
// to a one-indexed byte column. When the line's text is unknown, pass ok=false
// and the character offset is used as-is.
func LocalColumn(lineText string, utf16Char uint32, ok bool) int {
	if !ok {
		return OneIndexed(utf16Char)
	}
	return UTF16ToByteOffset(lineText, int(utf16Char)) + 1
}
