package decode

import (
	"strings"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// PresentWeather decodes a present-weather group off the front of
// cursor. The pattern allows every categorical group to be empty, so a
// match is only accepted here if at least one of descriptor,
// precipitation, obscuration, or other ended up non-empty — a
// zero-content match is not a present-weather group at all.
func PresentWeather(cursor string) (*report.PresentWeather, int, bool) {
	groups, n, ok := pattern.Groups(pattern.PresentWeather, cursor)
	if !ok {
		return nil, 0, false
	}
	pw := &report.PresentWeather{
		Intensity:     groups["intensity"],
		Descriptor:    groups["descriptor"],
		Precipitation: groups["precipitation"],
		Obscuration:   groups["obscuration"],
		Other:         groups["other"],
	}
	if pw.Descriptor == "" && pw.Precipitation == "" && pw.Obscuration == "" && pw.Other == "" {
		return nil, 0, false
	}
	pw.RawCode = strings.TrimRight(cursor[:n], " \t\r\n")
	return pw, n, true
}
