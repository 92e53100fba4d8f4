// internal/quantity/parse.go
package quantity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failure taxonomy. Errors returned by Parse and ParseQuantity wrap one
// of these sentinels; match with errors.Is.
var (
	ErrNumberExpected   = errors.New("number expected")
	ErrUnitWordExpected = errors.New("unit word expected")
	ErrTrailingContent  = errors.New("trailing content after quantities")
	ErrInputExhausted   = errors.New("input exhausted")
)

// SyntaxError reports the byte offset at which a parse gave up and the
// construct that was expected there.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse extracts every serving quantity from a label string, e.g.
// "1 package (23g Kernels)". The first quantity is mandatory; further
// quantities may be bare or parenthesized, with filler noise allowed around
// them. Anything left over that is not noise fails the parse.
//
// Quantities are returned in the order they appear in the input, first one
// first.
func Parse(input string) ([]Quantity, error) {
	s := &scanner{src: input}
	s.noise()
	first, err := s.quantity()
	if err != nil {
		return nil, err
	}
	s.skipSpace()

	out := []Quantity{first}
	for {
		save := s.pos
		s.skipSpace()
		if !s.eof() && s.src[s.pos] == '(' {
			s.pos++
		}
		s.noise()
		q, err := s.quantity()
		if err != nil {
			s.pos = save
			break
		}
		s.noise()
		if !s.eof() && s.src[s.pos] == ')' {
			s.pos++
		}
		s.skipSpace()
		out = append(out, q)
	}

	s.noise()
	if !s.eof() {
		return nil, &SyntaxError{Offset: s.pos, Err: ErrTrailingContent}
	}
	return out, nil
}

// ParseQuantity parses a single quantity at the very start of input and
// returns it along with the unconsumed remainder.
func ParseQuantity(input string) (Quantity, string, error) {
	s := &scanner{src: input}
	q, err := s.quantity()
	if err != nil {
		return Quantity{}, input, err
	}
	return q, s.rest(), nil
}

// scanner walks a label string byte by byte. All sub-parsers either consume
// input and succeed, or restore pos and report failure; there is no partial
// consumption on error.
type scanner struct {
	src string
	pos int
}

func (s *scanner) rest() string { return s.src[s.pos:] }

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// fail builds the error for a mandatory construct missing at pos. Running
// out of input mid-construct is reported distinctly from finding the wrong
// character.
func (s *scanner) fail(want error) *SyntaxError {
	if s.eof() {
		want = ErrInputExhausted
	}
	return &SyntaxError{Offset: s.pos, Err: want}
}

// quantity parses a numeric literal followed by at least one unit word. The
// first word is checked against the unit tables immediately; on a miss,
// further words are pulled one at a time, re-checking the accumulated phrase
// after each. The first table hit wins. If the words run out before a hit,
// the whole phrase becomes a nominal label.
func (s *scanner) quantity() (Quantity, error) {
	magnitude, err := s.number()
	if err != nil {
		return Quantity{}, err
	}
	s.skipSpace()
	word, err := s.unitWord()
	if err != nil {
		return Quantity{}, err
	}

	phrase := strings.ToLower(word)
	if q, ok := fromUnitName(magnitude, phrase); ok {
		return q, nil
	}
	for {
		save := s.pos
		if s.skipSpace() == 0 {
			break
		}
		word, err := s.unitWord()
		if err != nil {
			s.pos = save
			break
		}
		phrase += " " + strings.ToLower(word)
		if q, ok := fromUnitName(magnitude, phrase); ok {
			return q, nil
		}
	}
	return Nominal(magnitude, phrase), nil
}

// number parses a leading numeric literal in one of three shapes, tried in
// order at the same starting position: compound fraction ("1 1/2"), simple
// fraction ("1/2"), plain float ("83.1512"). Both fraction forms consume
// trailing whitespace.
func (s *scanner) number() (float32, error) {
	if f, ok := s.compoundFraction(); ok {
		return f, nil
	}
	if f, ok := s.fraction(); ok {
		return f, nil
	}
	return s.float()
}

// compoundFraction parses "<whole> <num>/<den>" as whole + num/den.
func (s *scanner) compoundFraction() (float32, bool) {
	save := s.pos
	whole := s.digits()
	if whole == "" || s.skipSpace() == 0 {
		s.pos = save
		return 0, false
	}
	frac, ok := s.fraction()
	if !ok {
		s.pos = save
		return 0, false
	}
	w, err := strconv.ParseFloat(whole, 32)
	if err != nil {
		s.pos = save
		return 0, false
	}
	return float32(w) + frac, true
}

// fraction parses "<num>/<den>", allowing whitespace around the slash and
// consuming any whitespace after the denominator.
func (s *scanner) fraction() (float32, bool) {
	save := s.pos
	num := s.digits()
	if num == "" {
		s.pos = save
		return 0, false
	}
	s.skipSpace()
	if s.eof() || s.src[s.pos] != '/' {
		s.pos = save
		return 0, false
	}
	s.pos++
	s.skipSpace()
	den := s.digits()
	if den == "" {
		s.pos = save
		return 0, false
	}
	s.skipSpace()
	n, err0 := strconv.ParseFloat(num, 32)
	d, err1 := strconv.ParseFloat(den, 32)
	if err0 != nil || err1 != nil {
		s.pos = save
		return 0, false
	}
	return float32(n) / float32(d), true
}

// float parses an unsigned decimal literal: digits with an optional
// fractional part and exponent, or a bare ".5" form.
func (s *scanner) float() (float32, error) {
	save := s.pos
	intPart := s.digits()
	if !s.eof() && s.src[s.pos] == '.' {
		mark := s.pos
		s.pos++
		if frac := s.digits(); frac == "" && intPart == "" {
			// a lone dot is not a number
			s.pos = mark
		}
	}
	if s.pos == save {
		s.pos = save
		return 0, s.fail(ErrNumberExpected)
	}
	// optional exponent; only consumed when well-formed
	if !s.eof() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if !s.eof() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		if s.digits() == "" {
			s.pos = mark
		}
	}
	f, err := strconv.ParseFloat(s.src[save:s.pos], 32)
	if err != nil {
		s.pos = save
		return 0, s.fail(ErrNumberExpected)
	}
	return float32(f), nil
}

// unitWord extracts the longest leading word under unit-naming rules:
// letters, plus '.' and '-' anywhere but the first character. Abbreviations
// like "oz." and hyphenated labels like "k-cups" tokenize as single words.
func (s *scanner) unitWord() (string, error) {
	start := s.pos
	for i := start; i < len(s.src); i++ {
		c := s.src[i]
		if isAlpha(c) || ((c == '.' || c == '-') && i != start) {
			continue
		}
		if i == start {
			return "", s.fail(ErrUnitWordExpected)
		}
		s.pos = i
		return s.src[start:i], nil
	}
	if start == len(s.src) {
		return "", s.fail(ErrUnitWordExpected)
	}
	s.pos = len(s.src)
	return s.src[start:], nil
}

// Filler words stripped by noise, longest first so "approximately" is not
// half-eaten by "approx.".
var noiseWords = []string{"approximately", "approx.", "about", "makes"}

// noise consumes filler tokens (approximation words, quote and pipe marks,
// whitespace) in any order. Zero occurrences is fine; noise never fails.
func (s *scanner) noise() {
	for {
		if s.skipSpace() > 0 {
			continue
		}
		if s.eof() {
			return
		}
		if c := s.src[s.pos]; c == '"' || c == '|' {
			s.pos++
			continue
		}
		if !s.noiseWord() {
			return
		}
	}
}

func (s *scanner) noiseWord() bool {
	for _, w := range noiseWords {
		if len(s.src)-s.pos >= len(w) && strings.EqualFold(s.src[s.pos:s.pos+len(w)], w) {
			s.pos += len(w)
			return true
		}
	}
	return false
}

// skipSpace consumes a whitespace run, reporting how many bytes it ate.
func (s *scanner) skipSpace() int {
	start := s.pos
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	return s.pos - start
}

// digits consumes a run of ASCII digits.
func (s *scanner) digits() string {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
