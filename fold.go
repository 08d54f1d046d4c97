package ics

import "unicode/utf8"

// Fold folds a logical content line so no physical line exceeds 75 octets,
// breaking with CRLF followed by a single space (RFC 5545 section 3.1). The
// result always ends with exactly one CRLF.
func Fold(line string) string {
	return string(defaultSerializationOptions().appendFolded(nil, line))
}

// appendFolded appends the folded, terminated form of line to dst.
// Continuation lines start with the fold marker, which counts towards the
// limit, and fold points never fall inside a multi-byte character.
func (c *SerializationConfiguration) appendFolded(dst []byte, line string) []byte {
	room := c.MaxLength
	for {
		n := foldPoint(line, room)
		dst = append(dst, line[:n]...)
		line = line[n:]
		if line == "" {
			break
		}
		dst = append(dst, c.NewLine...)
		dst = append(dst, c.FoldMarker)
		room = c.MaxLength - 1
	}
	return append(dst, c.NewLine...)
}

// foldPoint returns the length of the longest prefix of s that ends on a
// character boundary and fits in room octets. A leading character wider than
// room is returned whole so folding always advances.
func foldPoint(s string, room int) int {
	if len(s) <= room {
		return len(s)
	}
	n := 0
	for n < len(s) {
		_, size := utf8.DecodeRuneInString(s[n:])
		if n+size > room {
			break
		}
		n += size
	}
	if n == 0 {
		_, n = utf8.DecodeRuneInString(s)
	}
	return n
}
