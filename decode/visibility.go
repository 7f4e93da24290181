package decode

import (
	"strconv"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// Visibility decodes a horizontal-visibility group off the front of
// cursor, trying CAVOK, the unresolvable "////" form, meters (with or
// without NDV/directional suffix), and statute-mile forms in turn.
func Visibility(cursor string) (*report.Visibility, int, bool) {
	if _, n, ok := pattern.Groups(pattern.VisibilityCAVOK, cursor); ok {
		return &report.Visibility{IsCAVOK: true}, n, true
	}
	if _, n, ok := pattern.Groups(pattern.VisibilityUnknown, cursor); ok {
		// "////" is an unresolvable visibility group: the token is
		// consumed but decodes to no value, per the report grammar's
		// treatment of missing-sensor data as absent rather than an
		// error.
		return nil, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.VisibilityNDV, cursor); ok {
		meters, err := strconv.ParseFloat(groups["meters"], 64)
		if err != nil {
			return nil, 0, false
		}
		return &report.Visibility{DistanceValue: meters, Unit: "M", SpecialCondition: "NDV"}, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.VisibilityMeters, cursor); ok {
		meters, err := strconv.ParseFloat(groups["meters"], 64)
		if err != nil {
			return nil, 0, false
		}
		v := &report.Visibility{DistanceValue: meters, Unit: "M", Direction: groups["dir"]}
		switch groups["prefix"] {
		case "M":
			v.LessThan = true
		case "P":
			v.GreaterThan = true
		}
		return v, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.VisibilityFractionSM, cursor); ok {
		numerator, err := strconv.ParseFloat(groups["numerator"], 64)
		if err != nil {
			return nil, 0, false
		}
		denominator, err := strconv.ParseFloat(groups["denominator"], 64)
		if err != nil || denominator == 0 {
			return nil, 0, false
		}
		value := numerator / denominator
		if whole, present := groups["whole"]; present && whole != "" {
			w, err := strconv.ParseFloat(whole, 64)
			if err != nil {
				return nil, 0, false
			}
			value += w
		}
		v := &report.Visibility{DistanceValue: value, Unit: "SM"}
		switch groups["prefix"] {
		case "M":
			v.LessThan = true
		case "P":
			v.GreaterThan = true
		}
		return v, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.VisibilityWholeSM, cursor); ok {
		whole, err := strconv.ParseFloat(groups["whole"], 64)
		if err != nil {
			return nil, 0, false
		}
		v := &report.Visibility{DistanceValue: whole, Unit: "SM"}
		switch groups["prefix"] {
		case "M":
			v.LessThan = true
		case "P":
			v.GreaterThan = true
		}
		return v, n, true
	}
	return nil, 0, false
}
