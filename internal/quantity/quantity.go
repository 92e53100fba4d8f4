// internal/quantity/quantity.go
package quantity

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the three shapes a parsed quantity can take.
type Kind uint8

const (
	KindVolume Kind = iota + 1
	KindMass
	KindNominal
)

func (k Kind) String() string {
	switch k {
	case KindVolume:
		return "volume"
	case KindMass:
		return "mass"
	case KindNominal:
		return "nominal"
	}
	return "unknown"
}

// Quantity is a serving measurement parsed from a label string. Exactly one
// shape holds per value: a physical volume, a physical mass, or a nominal
// count with a free-text unit label ("package", "large bag") that did not
// resolve to a physical unit. Nominal labels are lower-cased with single
// spaces between words.
type Quantity struct {
	Kind      Kind
	Magnitude float32
	Volume    VolumeUnit // valid only when Kind == KindVolume
	Mass      MassUnit   // valid only when Kind == KindMass
	Label     string     // valid only when Kind == KindNominal
}

func NewVolume(magnitude float32, unit VolumeUnit) Quantity {
	return Quantity{Kind: KindVolume, Magnitude: magnitude, Volume: unit}
}

func NewMass(magnitude float32, unit MassUnit) Quantity {
	return Quantity{Kind: KindMass, Magnitude: magnitude, Mass: unit}
}

func Nominal(count float32, label string) Quantity {
	return Quantity{Kind: KindNominal, Magnitude: count, Label: label}
}

// Liters reports the magnitude converted to liters. The second return is
// false for mass and nominal quantities.
func (q Quantity) Liters() (float32, bool) {
	if q.Kind != KindVolume {
		return 0, false
	}
	return q.Magnitude * q.Volume.Liters(), true
}

// Grams reports the magnitude converted to grams. The second return is false
// for volume and nominal quantities.
func (q Quantity) Grams() (float32, bool) {
	if q.Kind != KindMass {
		return 0, false
	}
	return q.Magnitude * q.Mass.Grams(), true
}

// Unit returns the canonical unit name for physical quantities and the raw
// label for nominal ones.
func (q Quantity) Unit() string {
	switch q.Kind {
	case KindVolume:
		return q.Volume.String()
	case KindMass:
		return q.Mass.String()
	}
	return q.Label
}

// String renders the canonical surface form, e.g. "83.1512 gallon" or
// "1 package". For physical units re-parsing the result yields an equal
// quantity.
func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Magnitude, q.Unit())
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	obj := struct {
		Kind      string  `json:"kind"`
		Magnitude float32 `json:"magnitude"`
		Unit      string  `json:"unit,omitempty"`
		Label     string  `json:"label,omitempty"`
	}{Kind: q.Kind.String(), Magnitude: q.Magnitude}
	switch q.Kind {
	case KindVolume:
		obj.Unit = q.Volume.String()
	case KindMass:
		obj.Unit = q.Mass.String()
	case KindNominal:
		obj.Label = q.Label
	}
	return json.Marshal(obj)
}
