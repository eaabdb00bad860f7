package position

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16ToByteOffset converts a UTF-16 code unit offset to a byte offset in a string.
// LSP positions use UTF-16 code units, but Go strings are UTF-8 byte sequences.
// Surrogate pairs (characters > U+FFFF) count as 2 UTF-16 units.
func UTF16ToByteOffset(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}

	units := 0
	byteOffset := 0

	for byteOffset < len(s) && units < utf16Col {
		r, size := utf8.DecodeRuneInString(s[byteOffset:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte; treat as single unit and advance by 1 byte
			byteOffset++
			units++
			continue
		}

		runeUTF16Len := utf16.RuneLen(r)

		// If the target falls inside a surrogate pair, clamp to the start of the rune
		if runeUTF16Len == 2 && units+1 == utf16Col {
			break
		}

		units += runeUTF16Len
		byteOffset += size
	}

	return byteOffset
}

// ByteOffsetToUTF16 converts a byte offset to a UTF-16 code unit offset in a
// string. Inverse of UTF16ToByteOffset.
func ByteOffsetToUTF16(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	utf16Count := 0
	currentOffset := 0

	for currentOffset < byteOffset {
		r, size := utf8.DecodeRuneInString(s[currentOffset:])
		if r == utf8.RuneError && size == 0 {
			break // End of string
		}

		// Stop if decoding this rune would cross the target byteOffset
		if currentOffset+size > byteOffset {
			break
		}

		utf16Count += utf16.RuneLen(r)
		currentOffset += size
	}
	return utf16Count
}

// StringLengthUTF16 returns the length of a string in UTF-16 code units.
func StringLengthUTF16(s string) int {
	utf16Count := 0
	for _, r := range s {
		utf16Count += utf16.RuneLen(r)
	}
	return utf16Count
}
