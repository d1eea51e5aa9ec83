// Package normalize holds the pure text-cleanup functions shared by every
// scanner: character-reference decoding, corrupted-glyph repair,
// letter-spacing repair, and numeric field parsing. Grammars always see
// already-cleaned tokens; no function here keeps state.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCharRef    = regexp.MustCompile(`\(cid:(\d+)\)`)
	reSpaced     = regexp.MustCompile(`(?:\w\s){3,}`)
	reSpacedNum  = regexp.MustCompile(`\d\s+\d`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reCamelEdge  = regexp.MustCompile(`([a-z])([A-Z])`)
)

// charForRef maps a character-reference code to its glyph. The table covers
// digits, the Latin alphabet, and the punctuation observed in corrupted
// vendor documents; anything else is left encoded.
func charForRef(code int) (rune, bool) {
	switch {
	case code >= '0' && code <= '9',
		code >= 'A' && code <= 'Z',
		code >= 'a' && code <= 'z':
		return rune(code), true
	}
	switch code {
	case 34:
		return '"', true
	case 35:
		return '#', true
	case 43:
		return '+', true
	case 44:
		return ',', true
	case 45:
		return '-', true
	case 47:
		return '/', true
	case 58:
		return ':', true
	case 192:
		return 'À', true
	}
	return 0, false
}

// DecodeCharRefs replaces embedded "(cid:N)" markers with the character they
// encode. Markers with no table entry are kept verbatim.
func DecodeCharRefs(s string) string {
	if !strings.Contains(s, "(cid:") {
		return s
	}
	return reCharRef.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.Atoi(m[5 : len(m)-1])
		if err != nil {
			return m
		}
		if r, ok := charForRef(code); ok {
			return string(r)
		}
		return m
	})
}

// CollapseRepeats reduces any run of three or more identical characters to a
// single occurrence. Runs of two are kept: they are common in real words,
// while longer runs only come from the quadruplicating render fault.
func CollapseRepeats(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		j := i
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		if j-i >= 3 {
			b.WriteRune(rs[i])
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(rs[k])
			}
		}
		i = j
	}
	return b.String()
}

// IsLetterSpaced reports whether s looks letter-spaced: three or more
// consecutive single-character tokens, e.g. "E s t e r b r o o k".
func IsLetterSpaced(s string) bool { return reSpaced.MatchString(s) }

// HasSpacedDigits reports whether a numeric field has spaces wedged between
// its digits.
func HasSpacedDigits(s string) bool { return reSpacedNum.MatchString(s) }

// Despace removes all whitespace. Used for letter-spaced identifiers and
// numeric fields, which carry no internal word breaks.
func Despace(s string) string { return reWhitespace.ReplaceAllString(s, "") }

// DespaceWords collapses letter-spaced text and then restores natural word
// breaks at lower-to-upper case boundaries and around slashes.
func DespaceWords(s string) string {
	s = reWhitespace.ReplaceAllString(s, "")
	s = reCamelEdge.ReplaceAllString(s, "$1 $2")
	s = strings.ReplaceAll(s, "/", " / ")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// CollapseSpace folds internal newlines and repeated whitespace into single
// spaces and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseMoney parses a currency amount, tolerating currency symbols and
// thousands separators. ok is false when the remainder is not numeric.
func ParseMoney(s string) (float64, bool) {
	s = strings.NewReplacer("$", "", "£", "", "€", "", ",", "").Replace(s)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// ParseQuantity parses a quantity field. Some vendors print quantities with
// a decimal tail ("3.0"); the integral part is taken.
func ParseQuantity(s string) (int, bool) {
	v, ok := ParseMoney(s)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// FirstIdentifier keeps the first segment of a slash-delimited identifier
// field, e.g. "15294006/138 04006" -> "15294006".
func FirstIdentifier(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
