package convert

import (
	"fmt"
	"strings"
)

// Canonical x-axis units.
const (
	UnitNanometers  = "nm"
	UnitMicrometers = "um"
	UnitWavenumber  = "cm-1"
)

// minConvertible is the smallest source value that participates in a
// conversion; smaller or negative values are dropped rather than propagated as
// infinities.
const minConvertible = 1e-9

// UnitResult is the outcome of a wavelength-unit conversion.
type UnitResult struct {
	// X holds the converted axis values. Dropped source values are
	// omitted, so len(X) can be smaller than the input.
	X []float64

	// Kept maps each output value back to its input index, letting callers
	// filter paired intensity data when values were dropped.
	Kept []int

	FromUnit string
	ToUnit   string

	// Converted is false when no conversion rule matched and X is a plain
	// copy of the input.
	Converted bool

	// Note is a human-readable provenance message.
	Note string
}

var unitAliases = map[string]string{
	"nm":          UnitNanometers,
	"nanometer":   UnitNanometers,
	"nanometers":  UnitNanometers,
	"um":          UnitMicrometers,
	"µm":          UnitMicrometers,
	"micrometer":  UnitMicrometers,
	"micrometers": UnitMicrometers,
	"micron":      UnitMicrometers,
	"microns":     UnitMicrometers,
	"cm-1":        UnitWavenumber,
	"cm^-1":       UnitWavenumber,
	"cm⁻¹":        UnitWavenumber,
	"1/cm":        UnitWavenumber,
	"wavenumber":  UnitWavenumber,
	"wavenumbers": UnitWavenumber,
}

var defaultUnitByTechnique = map[string]string{
	"ir":       UnitWavenumber,
	"infrared": UnitWavenumber,
	"raman":    UnitWavenumber,
	"uv-vis":   UnitNanometers,
	"uv":       UnitNanometers,
	"vis":      UnitNanometers,
	"libs":     UnitNanometers,
}

// CanonicalUnit normalizes a unit string to one of the canonical unit
// constants. Unknown units are returned lowercased and trimmed.
func CanonicalUnit(unit string) string {
	key := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := unitAliases[key]; ok {
		return canonical
	}

	return key
}

// DefaultUnit returns the conventional x-axis unit for a technique: IR and
// Raman report wavenumbers, UV-Vis and LIBS report nanometers. The second
// return value is false for unknown techniques.
func DefaultUnit(technique string) (string, bool) {
	u, ok := defaultUnitByTechnique[strings.ToLower(strings.TrimSpace(technique))]
	return u, ok
}

// conversionRule transforms a single positive axis value.
type conversionRule func(v float64) float64

var conversionRules = map[[2]string]conversionRule{
	{UnitMicrometers, UnitWavenumber}: func(v float64) float64 { return 10000 / v },
	{UnitWavenumber, UnitMicrometers}: func(v float64) float64 { return 10000 / v },
	{UnitNanometers, UnitMicrometers}: func(v float64) float64 { return v / 1000 },
	{UnitMicrometers, UnitNanometers}: func(v float64) float64 { return v * 1000 },
	{UnitNanometers, UnitWavenumber}:  func(v float64) float64 { return 1e7 / v },
	{UnitWavenumber, UnitNanometers}:  func(v float64) float64 { return 1e7 / v },
}

// Wavelength converts x-axis values between units.
//
// When toUnit is empty the technique's conventional unit is used as the
// target. Non-positive or near-zero source values are dropped from the output
// (their indices are omitted from Kept). When no conversion rule matches the
// pair, the values pass through unchanged with Converted set to false.
func Wavelength(x []float64, fromUnit, toUnit, technique string) UnitResult {
	from := CanonicalUnit(fromUnit)
	to := CanonicalUnit(toUnit)

	if to == "" {
		implied, ok := DefaultUnit(technique)
		if !ok {
			return passThrough(x, from, to, "no target unit and no technique default; not converted")
		}

		to = implied
	}

	if from == to {
		return passThrough(x, from, to, fmt.Sprintf("already in %s; not converted", to))
	}

	rule, ok := conversionRules[[2]string{from, to}]
	if !ok {
		return passThrough(x, from, to, fmt.Sprintf("no conversion rule for %s to %s; not converted", from, to))
	}

	out := make([]float64, 0, len(x))
	kept := make([]int, 0, len(x))

	for i, v := range x {
		if v < minConvertible {
			continue
		}

		out = append(out, rule(v))
		kept = append(kept, i)
	}

	dropped := len(x) - len(out)
	note := fmt.Sprintf("converted %s to %s", from, to)
	if dropped > 0 {
		note = fmt.Sprintf("%s (%d non-positive values dropped)", note, dropped)
	}

	return UnitResult{
		X:         out,
		Kept:      kept,
		FromUnit:  from,
		ToUnit:    to,
		Converted: true,
		Note:      note,
	}
}

func passThrough(x []float64, from, to, note string) UnitResult {
	out := make([]float64, len(x))
	copy(out, x)

	kept := make([]int, len(x))
	for i := range kept {
		kept[i] = i
	}

	return UnitResult{
		X:        out,
		Kept:     kept,
		FromUnit: from,
		ToUnit:   to,
		Note:     note,
	}
}
