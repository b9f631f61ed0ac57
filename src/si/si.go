// Package si instantiates the core quantity types as the familiar named
// units: the canonical references are the meter, the second and the
// kilogram. Everything here is configuration of the units package; no
// arithmetic lives in this package.
package si

import (
	"fmt"

	"quanta/src/units"
)

// Axis assignment: axis 1 is length, axis 2 is time, axis 3 is mass.
var (
	Dimensionless = units.Dim{}
	Length        = units.Dim{D1: 1}
	Area          = units.Dim{D1: 2}
	Time          = units.Dim{D2: 1}
	Mass          = units.Dim{D3: 1}

	Velocity     = units.Dim{D1: 1, D2: -1}
	Acceleration = units.Dim{D1: 1, D2: -2}
	Force        = units.Dim{D1: 1, D2: -2, D3: 1}
)

// Unit magnitudes relative to the canonical references.
var (
	centi  = units.MustRatio(1, 100)
	milli  = units.MustRatio(1, 1000)
	kilo   = units.MustRatio(1000, 1)
	inch   = units.MustRatio(127, 5000) // 2.54 cm
	minute = units.MustRatio(60, 1)
	hour   = units.MustRatio(3600, 1)
)

var (
	Meter      = units.NewScale(Length)
	Centimeter = units.NewScale(Length, centi)
	Millimeter = units.NewScale(Length, milli)
	Kilometer  = units.NewScale(Length, kilo)
	Inch       = units.NewScale(Length, inch)

	Meter2      = units.NewScale(Area)
	Centimeter2 = units.NewScale(Area, centi)

	Second = units.NewScale(Time)
	Minute = units.NewScale(Time, units.One, minute)
	Hour   = units.NewScale(Time, units.One, hour)

	MeterPerSecond  = units.NewScale(Velocity)
	InchPerHour     = units.NewScale(Velocity, inch, hour)
	MeterPerSecond2 = units.NewScale(Acceleration)

	Newton = units.NewScale(Force)
)

var symbols = map[units.Scale]string{
	Meter:      "m",
	Centimeter: "cm",
	Millimeter: "mm",
	Kilometer:  "km",
	Inch:       "in",

	Meter2:      "m^2",
	Centimeter2: "cm^2",

	Second: "s",
	Minute: "min",
	Hour:   "h",

	MeterPerSecond:  "m/s",
	InchPerHour:     "in/h",
	MeterPerSecond2: "m/s^2",

	Newton: "N",
}

// Symbol returns the unit symbol of a cataloged scale.
func Symbol(s units.Scale) (string, bool) {
	sym, ok := symbols[s]
	return sym, ok
}

// Format renders a quantity with its unit symbol, e.g. "3 m". Scales outside
// the catalog fall back to the core's ratio and dimension rendering.
func Format[T units.Numeric](q units.Quantity[T]) string {
	if sym, ok := symbols[q.Scale()]; ok {
		return fmt.Sprintf("%v %s", q.Value(), sym)
	}
	return q.String()
}
