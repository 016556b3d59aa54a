package dpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses the canonical path string form.
//
// Grammar: zero or more segments, each either '/' followed by one or more
// characters excluding '/' and '[' (a property), or '[' followed by one or
// more decimal digits and ']' (an index).  "/" and "" both denote the
// root.  Anything else is rejected with ErrInvalidPath.
func Parse(s string) (Path, error) {
	if s == "" || s == "/" {
		return Root(), nil
	}
	p := Root()
	i := 0
	for i < len(s) {
		switch s[i] {
		case '/':
			j := i + 1
			for j < len(s) && s[j] != '/' && s[j] != '[' {
				j++
			}
			if j == i+1 {
				return Path{}, fmt.Errorf("%w: empty property segment at offset %d in %q", ErrInvalidPath, i, s)
			}
			var err error
			p, err = p.Property(s[i+1 : j])
			if err != nil {
				return Path{}, err
			}
			i = j
		case '[':
			j := i + 1
			for j < len(s) && s[j] != ']' {
				j++
			}
			if j == len(s) {
				return Path{}, fmt.Errorf("%w: unterminated index in %q", ErrInvalidPath, s)
			}
			digits := s[i+1 : j]
			if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
				return Path{}, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPath, digits, s)
			}
			idx, err := strconv.Atoi(digits)
			if err != nil {
				return Path{}, fmt.Errorf("%w: bad index %q in %q", ErrInvalidPath, digits, s)
			}
			p, err = p.Index(idx)
			if err != nil {
				return Path{}, err
			}
			i = j + 1
		default:
			return Path{}, fmt.Errorf("%w: unexpected character %q at offset %d in %q", ErrInvalidPath, s[i], i, s)
		}
	}
	return p, nil
}

func notDigit(r rune) bool { return r < '0' || r > '9' }

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
