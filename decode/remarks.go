package decode

import (
	"fmt"
	"strconv"

	"github.com/aerowx/noaaweather/lightning"
	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// RemarkDecoder decodes one remark shape off the remarks cursor,
// reporting the decoded remark, how many bytes it consumed, and
// whether it matched.
type RemarkDecoder func(cursor string) (report.Remark, int, bool)

// RemarkHandler pairs a remark decoder with its dispatch identity:
// Name keys the "already fired" set the remarks-mode dispatcher
// tracks per report, and CanRepeat says whether it may fire more than
// once in a single report's remarks section. Per the remarks priority
// list, only lightning and begin/end-weather repeat; every other
// remark is single-shot.
type RemarkHandler struct {
	Name      string
	CanRepeat bool
	Decode    RemarkDecoder
}

// RemarkHandlers is tried in order against the remarks cursor; the
// first to match wins. Order matters only where one pattern's prefix
// could also satisfy a looser one (e.g. PeakWind before a bare token).
var RemarkHandlers = []RemarkHandler{
	{Name: "auto", Decode: remarkAuto},
	{Name: "peakWind", Decode: remarkPeakWind},
	{Name: "windShift", Decode: remarkWindShift},
	{Name: "lightning", CanRepeat: true, Decode: remarkLightning},
	{Name: "seaLevelPressure", Decode: remarkSeaLevelPressure},
	{Name: "temp1Hr", Decode: remarkTemp1Hr},
	{Name: "temp6HrMaxMin", Decode: remarkTemp6HrMaxMin},
	{Name: "temp24HrMaxMin", Decode: remarkTemp24HrMaxMin},
	{Name: "press3Hr", Decode: remarkPress3Hr},
	{Name: "precip1Hr", Decode: remarkPrecip1Hr},
	{Name: "precip24Hr", Decode: remarkPrecip24Hr},
	{Name: "snowDepth", Decode: remarkSnowDepth},
	{Name: "snowIncrease", Decode: remarkSnowIncrease},
	{Name: "ceiling", Decode: remarkCeiling},
	{Name: "iceAccretion", Decode: remarkIceAccretion},
	{Name: "recentWeather", Decode: remarkRecentWeather},
	{Name: "beginEndWeather", CanRepeat: true, Decode: remarkBeginEndWeather},
	{Name: "maintenanceNeeded", Decode: remarkMaintenanceNeeded},
	{Name: "hailSize", Decode: remarkHailSize},
}

func remarkAuto(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Auto, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := "automated station"
	if groups["variant"] == "2" {
		desc = "automated station with precipitation discriminator"
	}
	if groups["suffix"] == "A" {
		desc += ", supplemental sensor"
	}
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkPeakWind(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.PeakWind, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("peak wind %s at %s degrees %s knots", groups["hour"]+groups["minute"], groups["dir"], groups["speed"])
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkWindShift(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.WindShift, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("wind shift at %s", groups["hour"]+groups["minute"])
	if groups["fropa"] != "" {
		desc += " with frontal passage"
	}
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkLightning(cursor string) (report.Remark, int, bool) {
	m := lightning.New(cursor)
	if !m.Find() {
		return report.Remark{}, 0, false
	}
	_, n, ok := pattern.Groups(pattern.Lightning, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := "lightning"
	if freq, present := m.Frequency(); present && freq != "" {
		desc = freq + " " + desc
	}
	if types, present := m.TypesString(); present {
		desc += " (" + types + ")"
	}
	if loc, present := m.Location(); present && loc != "" {
		desc += " " + loc
	}
	if primary, secondary, present := m.Direction(); present && primary != "" {
		desc += " " + primary
		if secondary != "" {
			desc += "-" + secondary
		}
	}
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkSeaLevelPressure(cursor string) (report.Remark, int, bool) {
	p, n, ok := SeaLevelPressure(cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("sea level pressure %.1f hPa", p.Value)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkTemp1Hr(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Temp1Hr, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	temp, err := tenthsToCelsius(groups["signt"], groups["temp"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	dew, err := tenthsToCelsius(groups["signd"], groups["dewpt"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("hourly temperature %.1fC dewpoint %.1fC", temp, dew)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkTemp6HrMaxMin(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Temp6HrMaxMin, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	value, err := tenthsToCelsius(groups["sign"], groups["value"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	kind := "6-hour maximum"
	if groups["which"] == "2" {
		kind = "6-hour minimum"
	}
	desc := fmt.Sprintf("%s temperature %.1fC", kind, value)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkTemp24HrMaxMin(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Temp24HrMaxMin, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	max, err := tenthsToCelsius(groups["maxsign"], groups["maxvalue"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	min, err := tenthsToCelsius(groups["minsign"], groups["minvalue"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("24-hour maximum %.1fC minimum %.1fC", max, min)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkPress3Hr(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Press3Hr, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	value, err := strconv.Atoi(groups["value"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("3-hour pressure tendency code %s, change %.1f hPa", groups["tendency"], float64(value)/10)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkPrecip1Hr(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Precip1Hr, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	value, err := strconv.Atoi(groups["value"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("hourly precipitation %.2f in", float64(value)/100)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkPrecip24Hr(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Precip24Hr, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	value, err := strconv.Atoi(groups["value"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("24-hour precipitation %.2f in", float64(value)/100)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkSnowDepth(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.SnowDepth, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("snow depth %s in", groups["inches"])
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkSnowIncrease(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.SnowIncrease, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("snow increasing rapidly %s in over %s hr", groups["inches"], groups["hours"])
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkCeiling(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.Ceiling, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	value, err := strconv.Atoi(groups["hundreds"])
	if err != nil {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("variable ceiling %d ft", value*100)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkIceAccretion(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.IceAccretion, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("ice accretion %s in over %s hr", groups["value"], groups["hours"])
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkRecentWeather(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.RecentWeather, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	desc := fmt.Sprintf("recent weather %s", groups["phenomenon"])
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkBeginEndWeather(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.BeginEndWeather, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	phenomenon := groups["intensity"] + groups["descriptor"] + groups["phenomenon"]
	desc := phenomenon
	if groups["b1"] != "" {
		desc += " began " + groups["btime1"]
	}
	if groups["e1"] != "" {
		desc += " ended " + groups["etime1"]
	}
	if groups["b2"] != "" {
		desc += " began " + groups["btime2"]
	}
	if groups["e2"] != "" {
		desc += " ended " + groups["etime2"]
	}
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func remarkMaintenanceNeeded(cursor string) (report.Remark, int, bool) {
	_, n, ok := pattern.Groups(pattern.MaintenanceNeeded, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	return report.Remark{Raw: trimMatch(cursor, n), Description: "station requires maintenance"}, n, true
}

// NoSigChange decodes the NOSIG token off the front of cursor. Unlike
// the rest of this file's decoders, it is a body-mode recognizer:
// NOSIG appears in the body of a report that has no RMK section at
// all, so it is wired directly into the METAR/TAF body handler tables
// rather than RemarkHandlers.
func NoSigChange(cursor string) (report.Remark, int, bool) {
	_, n, ok := pattern.Groups(pattern.NoSigChange, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	return report.Remark{Raw: trimMatch(cursor, n), Description: "no significant change expected"}, n, true
}

func remarkHailSize(cursor string) (report.Remark, int, bool) {
	groups, n, ok := pattern.Groups(pattern.HailSize, cursor)
	if !ok {
		return report.Remark{}, 0, false
	}
	if groups["whole"] == "" && groups["numerator"] == "" {
		return report.Remark{}, 0, false
	}
	size := groups["whole"]
	if groups["numerator"] != "" {
		if size != "" {
			size += " "
		}
		size += groups["numerator"] + "/" + groups["denominator"]
	}
	desc := fmt.Sprintf("largest hail %s in", size)
	return report.Remark{Raw: trimMatch(cursor, n), Description: desc}, n, true
}

func tenthsToCelsius(sign, digits string) (float64, error) {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, err
	}
	value := float64(v) / 10
	if sign == "1" {
		value = -value
	}
	return value, nil
}

func trimMatch(cursor string, n int) string {
	for n > 0 && (cursor[n-1] == ' ' || cursor[n-1] == '\t' || cursor[n-1] == '\r' || cursor[n-1] == '\n') {
		n--
	}
	return cursor[:n]
}
