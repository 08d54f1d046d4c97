package ics

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// textSpecials holds every character ToText rewrites.
const textSpecials = "\\;,\r\n"

// ToText escapes s for use as a TEXT property value (RFC 5545 section 3.3.11).
//
// Backslash, semicolon and comma are prefixed with a backslash. Every line
// ending (LF, CR or CRLF) becomes the two characters `\n`. Text is escaped
// exactly once: escaping already escaped text escapes the backslashes again.
func ToText(s string) string {
	if !strings.ContainsAny(s, textSpecials) {
		return s
	}
	r, _, err := transform.String(textEscaper{}, s)
	if err != nil {
		// textEscaper only reports short buffers, which transform.String
		// resolves by growing them.
		return s
	}
	return r
}

// NewTextEscaper returns a transformer applying the ToText mapping to a
// stream. A carriage return at the end of a chunk is held back until the next
// chunk shows whether it starts a CRLF pair.
func NewTextEscaper() transform.Transformer {
	return textEscaper{}
}

type textEscaper struct {
	transform.NopResetter
}

func (textEscaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\\', ';', ',':
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\\'
			dst[nDst+1] = c
			nDst += 2
			nSrc++
		case '\r', '\n':
			consumed := 1
			if c == '\r' {
				if nSrc+1 == len(src) && !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
					consumed = 2
				}
			}
			if nDst+2 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\\'
			dst[nDst+1] = 'n'
			nDst += 2
			nSrc += consumed
		default:
			size := 1
			if c >= utf8.RuneSelf {
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				_, size = utf8.DecodeRune(src[nSrc:])
			}
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
		}
	}
	return nDst, nSrc, nil
}

// paramSpecials forces a parameter value into a quoted-string.
const paramSpecials = ":;,"

// paramText renders one parameter value. Caret, double quote and line endings
// are encoded per RFC 6868; the value is quoted when it holds a delimiter or
// when quote is set.
func paramText(v string, quote bool) string {
	if strings.ContainsAny(v, "^\"\r\n") {
		b := strings.Builder{}
		b.Grow(len(v) + 4)
		for i := 0; i < len(v); i++ {
			switch v[i] {
			case '^':
				b.WriteString("^^")
			case '"':
				b.WriteString("^'")
			case '\r':
				if i+1 < len(v) && v[i+1] == '\n' {
					i++
				}
				b.WriteString("^n")
			case '\n':
				b.WriteString("^n")
			default:
				b.WriteByte(v[i])
			}
		}
		v = b.String()
	}
	if quote || strings.ContainsAny(v, paramSpecials) {
		return `"` + v + `"`
	}
	return v
}
