// Package version implements the RPM-style version comparator that boson's
// condition-evaluation layer calls to resolve version predicates such as
// `dependency('foo', version: '>=1.2')`. It is a total, side-effect-free
// function of two strings and an operator: tokenization never fails, so
// comparison is defined for any input.
package version

import "strings"

// Op is one of the six version-predicate operators a build definition can
// write in a version constraint.
type Op int

const (
	EQ Op = iota
	NE
	LT
	LE
	GT
	GE
)

func (op Op) String() string {
	switch op {
	case EQ:
		return "=="
	case NE:
		return "!="
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return "?"
	}
}

// ParseOp recognizes the spellings a build-definition condition writes
// version predicates with: one for each of the six operators, plus "=" as
// a second spelling of EQ.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "==", "=":
		return EQ, true
	case "!=":
		return NE, true
	case "<":
		return LT, true
	case "<=":
		return LE, true
	case ">":
		return GT, true
	case ">=":
		return GE, true
	default:
		return 0, false
	}
}

// token is one maximal run of digits or letters extracted from a version
// string, tagged with whether it was introduced by a preceding '~'.
type token struct {
	text  string
	digit bool
	tilde bool
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnumByte(c byte) bool { return isDigitByte(c) || isLetterByte(c) }

// tokenize scans s left to right, splitting it into a sequence of digit or
// letter tokens. Runs of characters that are neither alphanumeric nor '~'
// are separators and collapse to nothing; this is how '.', '_', and '+' end
// up equivalent. A '~' does not itself become a token; it marks the very
// next token as a pre-release token, which the comparator sorts below an
// absent token.
func tokenize(s string) []token {
	var toks []token
	pendingTilde := false
	i := 0
	n := len(s)

	for i < n {
		c := s[i]

		switch {
		case isAlnumByte(c):
			start := i
			digit := isDigitByte(c)
			for i < n && isAlnumByte(s[i]) && isDigitByte(s[i]) == digit {
				i++
			}
			toks = append(toks, token{text: s[start:i], digit: digit, tilde: pendingTilde})
			pendingTilde = false

		case c == '~':
			pendingTilde = true
			i++

		default:
			for i < n && !isAlnumByte(s[i]) && s[i] != '~' {
				i++
			}
		}
	}

	return toks
}

// stripLeadingZeros removes leading '0' characters from a digit token's
// text, e.g. "0010" -> "10". A token of all zeros strips to the empty
// string.
func stripLeadingZeros(s string) string {
	return strings.TrimLeft(s, "0")
}

// compareTokens compares two tokens known to be present on both sides.
func compareTokens(x, y token) int {
	switch {
	case x.digit && y.digit:
		xs, ys := stripLeadingZeros(x.text), stripLeadingZeros(y.text)
		if len(xs) != len(ys) {
			if len(xs) < len(ys) {
				return -1
			}
			return 1
		}
		if xs == ys {
			return 0
		}
		if xs < ys {
			return -1
		}
		return 1

	case !x.digit && !y.digit:
		xl, yl := strings.ToLower(x.text), strings.ToLower(y.text)
		if xl == yl {
			return 0
		}
		if xl < yl {
			return -1
		}
		return 1

	case x.digit && !y.digit:
		return 1

	default: // !x.digit && y.digit
		return -1
	}
}

// Compare performs a total RPM-style comparison of two version strings.
// It returns -1 if a < b, 0 if a == b, and 1 if a > b.
func Compare(a, b string) int {
	ta, tb := tokenize(a), tokenize(b)

	for i := 0; ; i++ {
		aOk, bOk := i < len(ta), i < len(tb)

		switch {
		case !aOk && !bOk:
			return 0

		case !aOk: // b has a remaining token, a does not
			if tb[i].tilde {
				return 1
			}
			return -1

		case !bOk: // a has a remaining token, b does not
			if ta[i].tilde {
				return -1
			}
			return 1

		default:
			if c := compareTokens(ta[i], tb[i]); c != 0 {
				return c
			}
		}
	}
}

// Satisfies evaluates whether a op b holds, using Compare to derive the
// derived operators NE, LE, GE from EQ/LT/GT.
func Satisfies(a string, op Op, b string) bool {
	c := Compare(a, b)

	switch op {
	case EQ:
		return c == 0
	case NE:
		return c != 0
	case LT:
		return c < 0
	case LE:
		return c <= 0
	case GT:
		return c > 0
	case GE:
		return c >= 0
	default:
		return false
	}
}
