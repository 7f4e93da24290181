package decode

import (
	"strconv"

	"k8s.io/utils/ptr"

	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// Wind decodes a wind group off the front of cursor.
func Wind(cursor string) (*report.Wind, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Wind, cursor)
	if !ok {
		return nil, 0, false
	}
	speed, err := strconv.Atoi(groups["speed"])
	if err != nil {
		return nil, 0, false
	}
	w := &report.Wind{
		Speed: speed,
		Unit:  groups["units"],
	}
	if dir := groups["dir"]; dir != "VRB" {
		deg, err := strconv.Atoi(dir)
		if err != nil {
			return nil, 0, false
		}
		w.DirectionDegrees = ptr.To(deg)
	}
	if gust, present := groups["gust"]; present && gust != "" {
		g, err := strconv.Atoi(gust)
		if err != nil {
			return nil, 0, false
		}
		w.Gust = ptr.To(g)
	}
	return w, n, true
}

// WindVariation decodes a wind direction-variation group (e.g. 350V040)
// off the front of cursor.
func WindVariation(cursor string) (*report.WindVariation, int, bool) {
	groups, n, ok := pattern.Groups(pattern.WindVariation, cursor)
	if !ok {
		return nil, 0, false
	}
	from, err1 := strconv.Atoi(groups["vfrom"])
	to, err2 := strconv.Atoi(groups["vto"])
	if err1 != nil || err2 != nil {
		return nil, 0, false
	}
	return &report.WindVariation{From: from, To: to}, n, true
}

// WindShear decodes either form of wind-shear group (altitude-based or
// runway-based) off the front of cursor.
func WindShear(cursor string) (*report.WindShear, int, bool) {
	if groups, n, ok := pattern.Groups(pattern.WindShearAlt, cursor); ok {
		alt, err := strconv.Atoi(groups["altitude"])
		if err != nil {
			return nil, 0, false
		}
		speed, err := strconv.Atoi(groups["speed"])
		if err != nil {
			return nil, 0, false
		}
		dir, err := strconv.Atoi(groups["dir"])
		if err != nil {
			return nil, 0, false
		}
		wind := &report.Wind{DirectionDegrees: ptr.To(dir), Speed: speed, Unit: "KT"}
		if gust, present := groups["gust"]; present && gust != "" {
			g, err := strconv.Atoi(gust)
			if err != nil {
				return nil, 0, false
			}
			wind.Gust = ptr.To(g)
		}
		return &report.WindShear{Altitude: ptr.To(alt), Wind: wind}, n, true
	}
	if groups, n, ok := pattern.Groups(pattern.WindShearRwy, cursor); ok {
		shear := &report.WindShear{Phase: groups["phase"], Runway: groups["rwy1"]}
		return shear, n, true
	}
	return nil, 0, false
}
