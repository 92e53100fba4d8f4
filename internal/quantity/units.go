// internal/quantity/units.go
package quantity

// VolumeUnit is the closed set of volume units the parser recognizes.
type VolumeUnit uint8

const (
	Centiliter VolumeUnit = iota
	CubicCentimeter
	CubicInch
	Cup
	FluidOunce
	Gallon
	Liter
	Milliliter
	Pint
	Quart
	Tablespoon
	Teaspoon
)

// MassUnit is the closed set of mass units the parser recognizes.
type MassUnit uint8

const (
	Centigram MassUnit = iota
	Gram
	Kilogram
	Milligram
	Ounce
	Pound
)

// Conversion factors to the base units (liter, gram). The parser only tags
// quantities; converting them is up to the caller.
var litersPer = [...]float32{
	Centiliter:      0.01,
	CubicCentimeter: 0.001,
	CubicInch:       0.016387064,
	Cup:             0.2365882365,
	FluidOunce:      0.0295735295625,
	Gallon:          3.785411784,
	Liter:           1,
	Milliliter:      0.001,
	Pint:            0.473176473,
	Quart:           0.946352946,
	Tablespoon:      0.01478676478125,
	Teaspoon:        0.00492892159375,
}

var gramsPer = [...]float32{
	Centigram: 0.01,
	Gram:      1,
	Kilogram:  1000,
	Milligram: 0.001,
	Ounce:     28.349523125,
	Pound:     453.59237,
}

// Liters returns the factor converting one of this unit to liters.
func (u VolumeUnit) Liters() float32 { return litersPer[u] }

// Grams returns the factor converting one of this unit to grams.
func (u MassUnit) Grams() float32 { return gramsPer[u] }

var volumeNamesCanonical = [...]string{
	Centiliter:      "centiliter",
	CubicCentimeter: "cubic centimeter",
	CubicInch:       "cubic inch",
	Cup:             "cup",
	FluidOunce:      "fluid ounce",
	Gallon:          "gallon",
	Liter:           "liter",
	Milliliter:      "milliliter",
	Pint:            "pint",
	Quart:           "quart",
	Tablespoon:      "tablespoon",
	Teaspoon:        "teaspoon",
}

var massNamesCanonical = [...]string{
	Centigram: "centigram",
	Gram:      "gram",
	Kilogram:  "kilogram",
	Milligram: "milligram",
	Ounce:     "ounce",
	Pound:     "pound",
}

func (u VolumeUnit) String() string { return volumeNamesCanonical[u] }

func (u MassUnit) String() string { return massNamesCanonical[u] }

// Surface-form synonym tables. Keys are lower-cased; multi-word phrases are
// joined with single spaces, matching how the parser accumulates words.
// Matching is exact, so singular and plural forms are separate entries.
var volumeNames = map[string]VolumeUnit{
	"centiliter":        Centiliter,
	"centiliters":       Centiliter,
	"cl":                Centiliter,
	"cubic centimeter":  CubicCentimeter,
	"cubic centimeters": CubicCentimeter,
	"cubic inch":        CubicInch,
	"cubic inches":      CubicInch,
	"cup":               Cup,
	"cups":              Cup,
	"fl.oz.":            FluidOunce,
	"fl. oz.":           FluidOunce,
	"fl oz":             FluidOunce,
	"fluid ounce":       FluidOunce,
	"fluid oz":          FluidOunce,
	"fluid ounces":      FluidOunce,
	"oza":               FluidOunce,
	"gallon":            Gallon,
	"gallons":           Gallon,
	"gals":              Gallon,
	"gal":               Gallon,
	"l":                 Liter,
	"liter":             Liter,
	"liters":            Liter,
	"ml":                Milliliter,
	"milliliter":        Milliliter,
	"milliliters":       Milliliter,
	"pint":              Pint,
	"pints":             Pint,
	"quart":             Quart,
	"quarts":            Quart,
	"tbsp":              Tablespoon,
	"tablespoon":        Tablespoon,
	"tablespoons":       Tablespoon,
	"tsp":               Teaspoon,
	"teaspoon":          Teaspoon,
	"teaspoons":         Teaspoon,
}

var massNames = map[string]MassUnit{
	"centigram":  Centigram,
	"centigrams": Centigram,
	"cg":         Centigram,
	"gram":       Gram,
	"grams":      Gram,
	"g":          Gram,
	"grm":        Gram,
	"gr":         Gram,
	"kilogram":   Kilogram,
	"kilograms":  Kilogram,
	"kg":         Kilogram,
	"milligram":  Milligram,
	"milligrams": Milligram,
	"mg":         Milligram,
	"ounce":      Ounce,
	"onz":        Ounce,
	"ounces":     Ounce,
	"oz":         Ounce,
	"oz.":        Ounce,
	"wt. oz.":    Ounce,
	"wt.oz.":     Ounce,
	"wt oz":      Ounce,
	"pound":      Pound,
	"pounds":     Pound,
	"lb":         Pound,
	"lbs":        Pound,
}

// fromUnitName resolves a lower-cased word or phrase against the synonym
// tables, producing the tagged physical quantity. The second return is false
// when the phrase names no known unit.
func fromUnitName(magnitude float32, phrase string) (Quantity, bool) {
	if u, ok := volumeNames[phrase]; ok {
		return NewVolume(magnitude, u), true
	}
	if u, ok := massNames[phrase]; ok {
		return NewMass(magnitude, u), true
	}
	return Quantity{}, false
}
