package validation

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// IndexUnit selects what an index in a Range counts.
type IndexUnit int

const (
	// IndexRunes counts Unicode code points.
	IndexRunes IndexUnit = iota
	// IndexUTF16 counts UTF-16 code units, as most native text widgets and
	// browser selection APIs do.
	IndexUTF16
	// IndexBytes counts bytes of the UTF-8 encoding.
	IndexBytes
)

func (u IndexUnit) String() string {
	switch u {
	case IndexRunes:
		return "runes"
	case IndexUTF16:
		return "utf16"
	case IndexBytes:
		return "bytes"
	default:
		return fmt.Sprintf("IndexUnit(%d)", int(u))
	}
}

func (u IndexUnit) width(r rune) int {
	if u == IndexUTF16 {
		if n := utf16.RuneLen(r); n > 0 {
			return n
		}
	}
	return 1
}

// Range is a half-open span [Start, End) of a field's text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of index units the range covers.
func (r Range) Len() int { return r.End - r.Start }

// replaceRange returns text with the span r replaced by replacement.
// The original string is never modified.
func replaceRange(text string, r Range, replacement string, unit IndexUnit) (string, error) {
	if r.Start < 0 || r.End < r.Start {
		return "", fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, r.Start, r.End)
	}

	start, ok := byteOffset(text, r.Start, unit)
	if !ok {
		return "", fmt.Errorf("%w: start %d is not a %s boundary of the text", ErrInvalidRange, r.Start, unit)
	}
	end, ok := byteOffset(text, r.End, unit)
	if !ok {
		return "", fmt.Errorf("%w: end %d is not a %s boundary of the text", ErrInvalidRange, r.End, unit)
	}

	return text[:start] + replacement + text[end:], nil
}

// byteOffset converts an index in the given unit into a byte offset.
// It reports false when the index is past the end of text or falls inside
// a character.
func byteOffset(text string, index int, unit IndexUnit) (int, bool) {
	if index < 0 {
		return 0, false
	}

	if unit == IndexBytes {
		if index > len(text) {
			return 0, false
		}
		if index < len(text) && !utf8.RuneStart(text[index]) {
			return 0, false
		}
		return index, true
	}

	pos := 0
	for offset, r := range text {
		if pos == index {
			return offset, true
		}
		if pos > index {
			// index points into the middle of a surrogate pair
			return 0, false
		}
		pos += unit.width(r)
	}
	if pos == index {
		return len(text), true
	}
	return 0, false
}
