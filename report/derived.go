package report

import (
	"fmt"
	"math"
)

// standardPressureHpa and standardPressureInHg are the ICAO standard
// atmosphere's sea-level pressure, used as the zero point for altimeter
// deviation and pressure-altitude calculations.
const (
	standardPressureHpa  = 1013.25
	standardPressureInHg = 29.92
)

// Spread returns the dewpoint depression (temperature minus dewpoint)
// in Celsius and true, or 0 and false if no dewpoint was reported.
func (t Temperature) Spread() (float64, bool) {
	if t.DewpointCelsius == nil {
		return 0, false
	}
	return float64(t.Celsius - *t.DewpointCelsius), true
}

// RelativeHumidity estimates relative humidity as a percentage using
// the Magnus approximation, or false if no dewpoint was reported.
func (t Temperature) RelativeHumidity() (float64, bool) {
	if t.DewpointCelsius == nil {
		return 0, false
	}
	const a, b = 17.625, 243.04
	temp := float64(t.Celsius)
	dew := float64(*t.DewpointCelsius)
	numerator := math.Exp(a * dew / (b + dew))
	denominator := math.Exp(a * temp / (b + temp))
	return 100 * numerator / denominator, true
}

// IsFoggy reports whether the temperature/dewpoint spread is narrow
// enough (2.5C or less) to be consistent with fog formation.
func (t Temperature) IsFoggy() bool {
	spread, ok := t.Spread()
	return ok && spread <= 2.5
}

// IsFreezing reports whether the air temperature is at or below 0C.
func (t Temperature) IsFreezing() bool {
	return t.Celsius <= 0
}

// IsIcingRisk reports whether conditions (near-freezing temperature
// with a narrow spread, indicating visible moisture) are consistent
// with airframe icing.
func (t Temperature) IsIcingRisk() bool {
	if t.Celsius < -10 || t.Celsius > 2 {
		return false
	}
	spread, ok := t.Spread()
	return ok && spread <= 3
}

// Fahrenheit converts the air temperature to Fahrenheit.
func (t Temperature) Fahrenheit() int {
	return t.Celsius*9/5 + 32
}

// DewpointFahrenheit converts the dewpoint to Fahrenheit, or returns
// false if no dewpoint was reported.
func (t Temperature) DewpointFahrenheit() (int, bool) {
	if t.DewpointCelsius == nil {
		return 0, false
	}
	return *t.DewpointCelsius*9/5 + 32, true
}

// Kelvin converts the air temperature to Kelvin.
func (t Temperature) Kelvin() float64 {
	return float64(t.Celsius) + 273.15
}

// ToInchesHg returns the pressure value in inches of mercury,
// converting from hectopascals if necessary.
func (p Pressure) ToInchesHg() float64 {
	if p.Unit == UnitInchesHg {
		return p.Value
	}
	return p.Value / 33.8639
}

// ToHectopascals returns the pressure value in hectopascals, converting
// from inches of mercury if necessary.
func (p Pressure) ToHectopascals() float64 {
	if p.Unit == UnitHectopascals {
		return p.Value
	}
	return p.Value * 33.8639
}

// ToMetarAltimeter formats the pressure as a METAR altimeter group
// (e.g. "A2992"), converting to inches of mercury first if necessary.
func (p Pressure) ToMetarAltimeter() string {
	hundredths := int(math.Round(p.ToInchesHg() * 100))
	return fmt.Sprintf("A%04d", hundredths)
}

// DeviationFromStandard returns how far the pressure is from the ICAO
// standard atmosphere's sea-level value (1013.25 hPa / 29.92 inHg), in
// the pressure's own unit.
func (p Pressure) DeviationFromStandard() float64 {
	if p.Unit == UnitInchesHg {
		return p.Value - standardPressureInHg
	}
	return p.Value - standardPressureHpa
}

// PressureAltitude returns the pressure altitude in feet given a field
// elevation, using the standard 1 hPa ~ 27 ft / 1 inHg ~ 1000 ft
// approximation above the field.
func (p Pressure) PressureAltitude(fieldElevationFeet float64) float64 {
	if p.Unit == UnitInchesHg {
		return fieldElevationFeet + (standardPressureInHg-p.Value)*1000
	}
	return fieldElevationFeet + (standardPressureHpa-p.Value)*27
}
