package decode

import (
	"strconv"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// plausibleHpaMin and plausibleHpaMax bound the bare, unprefixed
// hectopascal altimeter form — without a leading A/Q/AA/QNH token the
// only way to tell a pressure group from other bare numerics is
// whether it falls in a physically plausible sea-level range.
const (
	plausibleHpaMin = 850
	plausibleHpaMax = 1090
)

// Altimeter decodes an altimeter-setting group off the front of
// cursor, trying the A/AA-prefixed inHg form, the Q/QNH-prefixed
// hectopascal form, the INS-suffixed inHg form, and finally the bare
// hectopascal form (accepted only within a plausible sea-level range).
func Altimeter(cursor string) (*report.Pressure, int, bool) {
	if groups, n, ok := pattern.Groups(pattern.AltimeterPrefixA, cursor); ok {
		value, err := strconv.Atoi(fixDigits(groups["press"]))
		if err != nil {
			return nil, 0, false
		}
		return &report.Pressure{Value: float64(value) / 100, Unit: report.UnitInchesHg}, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.AltimeterPrefixQ, cursor); ok {
		value, err := strconv.Atoi(fixDigits(groups["press"]))
		if err != nil {
			return nil, 0, false
		}
		return &report.Pressure{Value: float64(value), Unit: report.UnitHectopascals}, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.AltimeterSuffixINS, cursor); ok {
		value, err := strconv.Atoi(fixDigits(groups["press"]))
		if err != nil {
			return nil, 0, false
		}
		return &report.Pressure{Value: float64(value) / 100, Unit: report.UnitInchesHg}, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.AltimeterBareHpa, cursor); ok {
		value, err := strconv.Atoi(fixDigits(groups["press"]))
		if err != nil {
			return nil, 0, false
		}
		if value < plausibleHpaMin || value > plausibleHpaMax {
			return nil, 0, false
		}
		return &report.Pressure{Value: float64(value), Unit: report.UnitHectopascals}, n, true
	}
	return nil, 0, false
}

// SeaLevelPressure decodes the remarks-section SLPnnn group into a
// hectopascal Pressure. The group carries only the tenths and units
// digits of the value, so the missing hundreds digit is inferred from
// the plausible sea-level range: a tenths-value of 550 or above
// implies a 900s pressure, otherwise a 1000s pressure.
func SeaLevelPressure(cursor string) (*report.Pressure, int, bool) {
	groups, n, ok := pattern.Groups(pattern.SeaLevelPress, cursor)
	if !ok {
		return nil, 0, false
	}
	tenths, err := strconv.Atoi(groups["value"])
	if err != nil {
		return nil, 0, false
	}
	base := 1000.0
	if tenths >= 550 {
		base = 900.0
	}
	return &report.Pressure{Value: base + float64(tenths)/10, Unit: report.UnitHectopascals}, n, true
}
