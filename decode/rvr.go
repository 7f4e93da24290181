package decode

import (
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// RunwayVisualRange decodes a runway-visual-range group, including the
// cleared-runway form (R24C/CLRD62), off the front of cursor.
func RunwayVisualRange(cursor string) (*report.RunwayVisualRange, int, bool) {
	if groups, n, ok := pattern.Groups(pattern.RVRCleared, cursor); ok {
		return &report.RunwayVisualRange{Runway: groups["runway"], IsCleared: true}, n, true
	}
	groups, n, ok := pattern.Groups(pattern.RVR, cursor)
	if !ok {
		return nil, 0, false
	}
	value, err := strconv.Atoi(groups["value"])
	if err != nil {
		return nil, 0, false
	}
	rvr := &report.RunwayVisualRange{Runway: groups["runway"], Prefix: groups["prefix"], Trend: groups["trend"]}
	if high, present := groups["high"]; present && high != "" {
		h, err := strconv.Atoi(high)
		if err != nil {
			return nil, 0, false
		}
		rvr.VariableLow = ptr.To(value)
		rvr.VariableHigh = ptr.To(h)
	} else {
		rvr.VisualRangeFeet = ptr.To(value)
	}
	return rvr, n, true
}

// RVRUnavailable reports whether cursor begins with the literal RVRNO token.
func RVRUnavailable(cursor string) (int, bool) {
	_, n, ok := pattern.Groups(pattern.RVRNo, cursor)
	return n, ok
}
