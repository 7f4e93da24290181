package decode

import (
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

var skyCoverNames = map[string]string{
	"FEW": report.CoverageFew,
	"SCT": report.CoverageScattered,
	"BKN": report.CoverageBroken,
	"OVC": report.CoverageOvercast,
	"SKC": report.CoverageSkyClear,
	"CLR": report.CoverageClear,
	"NSC": report.CoverageNoSignificant,
	"NCD": report.CoverageNoSignificant,
	"VV":  report.CoverageVerticalVisible,
}

// SkyCondition decodes a single cloud-layer group off the front of
// cursor, normalizing the "0VC"/"SCK" OCR confusions and the O-digit
// swap in the height field.
func SkyCondition(cursor string) (*report.SkyCondition, int, bool) {
	groups, n, ok := pattern.Groups(pattern.SkyCondition, cursor)
	if !ok {
		return nil, 0, false
	}
	cover := normalizeSkyCover(groups["cover"])
	name, known := skyCoverNames[cover]
	if !known {
		return nil, 0, false
	}
	sc := &report.SkyCondition{Coverage: name, CloudType: groups["cloud"]}
	if height, present := groups["height"]; present && height != "" && height != "///" {
		h, err := strconv.Atoi(fixDigits(height))
		if err != nil {
			return nil, 0, false
		}
		sc.HeightFeet = ptr.To(h * 100)
	}
	return sc, n, true
}
