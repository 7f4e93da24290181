package decode

import (
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

func isSentinel(s string) bool {
	switch s {
	case "", "//", "XX", "MM":
		return true
	default:
		return false
	}
}

// Temperature decodes the temperature/dewpoint pair off the front of
// cursor. A sentinel temperature value (//, XX, MM) makes the whole
// group unreadable and is rejected, not defaulted; a sentinel or
// absent dewpoint leaves DewpointCelsius nil.
func Temperature(cursor string) (*report.Temperature, int, bool) {
	groups, n, ok := pattern.Groups(pattern.TempDewpoint, cursor)
	if !ok {
		return nil, 0, false
	}
	if isSentinel(groups["temp"]) {
		return nil, 0, false
	}
	temp, err := strconv.Atoi(groups["temp"])
	if err != nil {
		return nil, 0, false
	}
	if groups["signt"] == "M" {
		temp = -temp
	}
	t := &report.Temperature{Celsius: temp}
	if dewpt := groups["dewpt"]; !isSentinel(dewpt) {
		d, err := strconv.Atoi(dewpt)
		if err != nil {
			return nil, 0, false
		}
		if groups["signd"] == "M" {
			d = -d
		}
		t.DewpointCelsius = ptr.To(d)
	}
	return t, n, true
}
