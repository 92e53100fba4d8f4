// internal/quantity/parse_test.go
package quantity

import (
	"errors"
	"testing"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  float32
		rest  string
		isErr bool
	}{
		{name: "decimal with space", in: "1.123 blah", want: 1.123, rest: " blah"},
		{name: "decimal no space", in: "1.123blah", want: 1.123, rest: "blah"},
		{name: "integer", in: "83", want: 83, rest: ""},
		{name: "simple fraction", in: "1/2.", want: 0.5, rest: "."},
		{name: "compound fraction", in: "1 1/2.", want: 1.5, rest: "."},
		{name: "fraction spaced slash", in: "1 / 2", want: 0.5, rest: ""},
		{name: "improper fraction", in: "3/2", want: 1.5, rest: ""},
		{name: "fraction eats trailing space", in: "1/2  x", want: 0.5, rest: "x"},
		{name: "scientific", in: "1e2 cups", want: 100, rest: " cups"},
		{name: "leading dot", in: ".5 cups", want: 0.5, rest: " cups"},
		{name: "unterminated fraction falls back to float", in: "1/", want: 1, rest: "/"},
		{name: "no number", in: "some amount", isErr: true},
		{name: "empty", in: "", isErr: true},
		{name: "leading dash", in: "-5 cups", isErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &scanner{src: tc.in}
			got, err := s.number()
			if tc.isErr {
				if err == nil {
					t.Fatalf("number(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("number(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("number(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if s.rest() != tc.rest {
				t.Errorf("number(%q) rest = %q, want %q", tc.in, s.rest(), tc.rest)
			}
		})
	}
}

func TestNumberErrorKinds(t *testing.T) {
	s := &scanner{src: ""}
	if _, err := s.number(); !errors.Is(err, ErrInputExhausted) {
		t.Errorf("number(\"\") error = %v, want ErrInputExhausted", err)
	}
	s = &scanner{src: "x"}
	if _, err := s.number(); !errors.Is(err, ErrNumberExpected) {
		t.Errorf("number(\"x\") error = %v, want ErrNumberExpected", err)
	}
}

func TestUnitWord(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		rest  string
		isErr bool
	}{
		{in: "gal of oil", want: "gal", rest: " of oil"},
		{in: "fl.oz. x", want: "fl.oz.", rest: " x"},
		{in: "oz.)", want: "oz.", rest: ")"},
		{in: "k-cups", want: "k-cups", rest: ""},
		{in: "cups(35g)", want: "cups", rest: "(35g)"},
		{in: "-gallons", isErr: true},
		{in: ".oz", isErr: true},
		{in: "", isErr: true},
		{in: "35g", isErr: true},
	}

	for _, tc := range cases {
		s := &scanner{src: tc.in}
		got, err := s.unitWord()
		if tc.isErr {
			if err == nil {
				t.Errorf("unitWord(%q) = %q, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("unitWord(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want || s.rest() != tc.rest {
			t.Errorf("unitWord(%q) = %q rest %q, want %q rest %q",
				tc.in, got, s.rest(), tc.want, tc.rest)
		}
	}
}

func TestNoise(t *testing.T) {
	cases := []struct {
		in   string
		rest string
	}{
		{in: "hello", rest: "hello"},
		{in: " | ABOUT  ", rest: ""},
		{in: `"approximately 3`, rest: "3"},
		{in: "Makes about 4", rest: "4"},
		{in: "approx. 2 cups", rest: "2 cups"},
		{in: "", rest: ""},
	}

	for _, tc := range cases {
		s := &scanner{src: tc.in}
		s.noise()
		if s.rest() != tc.rest {
			t.Errorf("noise(%q) rest = %q, want %q", tc.in, s.rest(), tc.rest)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Quantity
		rest string
	}{
		{
			name: "one word unit no space",
			in:   "83.1512gal of oil",
			want: NewVolume(83.1512, Gallon),
			rest: " of oil",
		},
		{
			name: "one word unit with space",
			in:   "83.1512 gallons of cheese",
			want: NewVolume(83.1512, Gallon),
			rest: " of cheese",
		},
		{
			name: "two word unit",
			in:   "5.26 cubic inches of rice (35g)",
			want: NewVolume(5.26, CubicInch),
			rest: " of rice (35g)",
		},
		{
			name: "abbreviation with periods",
			in:   "5.26 fl. oz. of rice (35g)",
			want: NewVolume(5.26, FluidOunce),
			rest: " of rice (35g)",
		},
		{
			name: "abbreviation single token",
			in:   "5.26 fl.oz. of rice (35g)",
			want: NewVolume(5.26, FluidOunce),
			rest: " of rice (35g)",
		},
		{
			name: "abbreviation wide spacing",
			in:   "5.26 fl.    oz. of rice (35g)",
			want: NewVolume(5.26, FluidOunce),
			rest: " of rice (35g)",
		},
		{
			name: "mass unit",
			in:   "2 lbs of flour",
			want: NewMass(2, Pound),
			rest: " of flour",
		},
		{
			name: "one word nominal",
			in:   "1 package (23g Kernels)",
			want: Nominal(1, "package"),
			rest: " (23g Kernels)",
		},
		{
			name: "two word nominal",
			in:   "1 large bag (3 pounds)",
			want: Nominal(1, "large bag"),
			rest: " (3 pounds)",
		},
		{
			name: "hyphenated nominal",
			in:   "4.12 k-cups",
			want: Nominal(4.12, "k-cups"),
			rest: "",
		},
		{
			name: "nominal is lower-cased",
			in:   "1 Large Bag!",
			want: Nominal(1, "large bag"),
			rest: "!",
		},
		{
			name: "fractional magnitude",
			in:   "1 1/2 cups of sugar",
			want: NewVolume(1.5, Cup),
			rest: " of sugar",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, rest, err := ParseQuantity(tc.in)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseQuantity(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
			if rest != tc.rest {
				t.Errorf("ParseQuantity(%q) rest = %q, want %q", tc.in, rest, tc.rest)
			}
		})
	}
}

func TestParseQuantityErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{in: "83 -gallons", want: ErrUnitWordExpected},
		{in: "some amount of stuff", want: ErrNumberExpected},
		{in: "83", want: ErrInputExhausted},
		{in: "83 ", want: ErrInputExhausted},
		{in: "", want: ErrInputExhausted},
	}

	for _, tc := range cases {
		_, _, err := ParseQuantity(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseQuantity(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Quantity
	}{
		{
			name: "single quantity",
			in:   "1 cup",
			want: []Quantity{NewVolume(1, Cup)},
		},
		{
			name: "leading noise",
			in:   "Makes about 4 cups",
			want: []Quantity{NewVolume(4, Cup)},
		},
		{
			name: "parenthesized alternative",
			in:   "1 package (23g)",
			want: []Quantity{Nominal(1, "package"), NewMass(23, Gram)},
		},
		{
			name: "fraction then parenthesized mass",
			in:   "about 1 1/2 cups (35 g)",
			want: []Quantity{NewVolume(1.5, Cup), NewMass(35, Gram)},
		},
		{
			name: "bare second quantity",
			in:   "2 lb 32 oz",
			want: []Quantity{NewMass(2, Pound), NewMass(32, Ounce)},
		},
		{
			name: "pipe separated",
			in:   `"8 fl oz | 240 ml`,
			want: []Quantity{NewVolume(8, FluidOunce), NewVolume(240, Milliliter)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Parse(%q)[%d] = %+v, want %+v", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{in: "some amount of stuff", want: ErrNumberExpected},
		{in: "1 cup of stuff", want: ErrTrailingContent},
		{in: "5.26 fl. oz. of rice (35g)", want: ErrTrailingContent},
		{in: "", want: ErrInputExhausted},
	}

	for _, tc := range cases {
		_, err := Parse(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse("1 cup of stuff")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Parse error = %T, want *SyntaxError", err)
	}
	// offset of "of"
	if syntaxErr.Offset != 6 {
		t.Errorf("offset = %d, want 6", syntaxErr.Offset)
	}
}

// Re-parsing a physical quantity's canonical surface form yields an equal
// value.
func TestCanonicalRoundTrip(t *testing.T) {
	var quantities []Quantity
	for u := Centiliter; u <= Teaspoon; u++ {
		quantities = append(quantities, NewVolume(2.5, u))
	}
	for u := Centigram; u <= Pound; u++ {
		quantities = append(quantities, NewMass(2.5, u))
	}
	quantities = append(quantities, Nominal(3, "package"))

	for _, want := range quantities {
		got, err := Parse(want.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", want.String(), err)
			continue
		}
		if len(got) != 1 || got[0] != want {
			t.Errorf("Parse(%q) = %v, want [%+v]", want.String(), got, want)
		}
	}
}
