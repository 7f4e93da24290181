package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/aerowx/noaaweather/decode"
	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// SourceTypeMetar identifies the METAR/SPECI parser in a ParserException.
const SourceTypeMetar = "NOAA_METAR"

// CanParseMetar reports whether raw looks enough like a METAR/SPECI
// report to be worth attempting — an optional external timestamp and
// report keyword, followed by a station id and day/time group.
func CanParseMetar(raw string) bool {
	cursor := strings.ToUpper(strings.TrimSpace(raw))
	if _, rest, ok := parseExternalTimestamp(cursor); ok {
		cursor = strings.TrimSpace(rest)
	}
	if _, n, ok := pattern.Groups(pattern.ReportKeywordMetar, cursor); ok {
		cursor = strings.TrimSpace(cursor[n:])
	}
	_, _, ok := pattern.Groups(pattern.StationDayTime, cursor)
	return ok
}

// ParseMetar decodes a single METAR or SPECI report. now anchors the
// observation-time reconstruction; it is never read from the system
// clock inside the decoder.
func ParseMetar(raw string, now time.Time) ParseResult[report.MetarReport] {
	return safeParse(SourceTypeMetar, raw, func() ParseResult[report.MetarReport] {
		return parseMetar(raw, now)
	})
}

func parseMetar(raw string, now time.Time) ParseResult[report.MetarReport] {
	if strings.TrimSpace(raw) == "" {
		return Failure[report.MetarReport](&ParserException{
			ParserType: SourceTypeMetar,
			Message:    "Raw data cannot be null or empty",
			RawData:    raw,
		})
	}

	rawTrimmed := strings.TrimSpace(raw)
	cursor := strings.ToUpper(rawTrimmed)

	if !CanParseMetar(cursor) {
		return Failure[report.MetarReport](&ParserException{
			ParserType: SourceTypeMetar,
			Message:    "Data is not a valid METAR report",
			RawData:    raw,
		})
	}

	clock := now
	if externalClock, rest, ok := parseExternalTimestamp(cursor); ok {
		clock = externalClock
		cursor = strings.TrimSpace(rest)
	}

	rpt := report.MetarReport{RawData: rawTrimmed, ReportType: "METAR"}

	if groups, n, ok := pattern.Groups(pattern.ReportKeywordMetar, cursor); ok {
		rpt.ReportType = groups["keyword"]
		cursor = strings.TrimSpace(cursor[n:])
	}

	stGroups, n, ok := pattern.Groups(pattern.StationDayTime, cursor)
	if !ok {
		return Failure[report.MetarReport](&ParserException{
			ParserType: SourceTypeMetar,
			Message:    "Could not extract station ID from METAR",
			RawData:    raw,
		})
	}
	rpt.StationID = stGroups["station"]
	day, _ := strconv.Atoi(stGroups["zday"])
	hour, _ := strconv.Atoi(stGroups["zhour"])
	minute, _ := strconv.Atoi(stGroups["zmin"])
	rpt.ObservationTime = reconstructObservationTime(clock, day, hour, minute)
	cursor = strings.TrimSpace(cursor[n:])

	if groups, n, ok := pattern.Groups(pattern.ReportModifier, cursor); ok {
		rpt.ReportModifier = groups["modifier"]
		cursor = strings.TrimSpace(cursor[n:])
	}

	bodyHandlers := metarBodyHandlers(&rpt)
	remarksHandlers := metarRemarksHandlers(&rpt)
	unparsedBody, unparsedRemarks := runBody(cursor, bodyHandlers, remarksHandlers)
	rpt.UnparsedTokens = append(unparsedBody, unparsedRemarks...)

	return Success(rpt)
}

func metarBodyHandlers(rpt *report.MetarReport) []Handler {
	return []Handler{
		{Name: "wind", Try: func(cursor string) (int, bool) {
			w, n, ok := decode.Wind(cursor)
			if !ok {
				return 0, false
			}
			rpt.Wind = w
			return n, true
		}},
		{Name: "windVariation", Try: func(cursor string) (int, bool) {
			if rpt.Wind == nil {
				return 0, false
			}
			v, n, ok := decode.WindVariation(cursor)
			if !ok {
				return 0, false
			}
			rpt.Wind.VariableDirection = v
			return n, true
		}},
		{Name: "windShear", CanRepeat: true, Try: func(cursor string) (int, bool) {
			ws, n, ok := decode.WindShear(cursor)
			if !ok {
				return 0, false
			}
			rpt.WindShear = append(rpt.WindShear, *ws)
			return n, true
		}},
		{Name: "visibility", Try: func(cursor string) (int, bool) {
			v, n, ok := decode.Visibility(cursor)
			if !ok {
				return 0, false
			}
			rpt.Visibility = v
			return n, true
		}},
		{Name: "rvrCleared", CanRepeat: true, Try: func(cursor string) (int, bool) {
			rvr, n, ok := decode.RunwayVisualRange(cursor)
			if !ok {
				return 0, false
			}
			rpt.RunwayVisualRange = append(rpt.RunwayVisualRange, *rvr)
			return n, true
		}},
		{Name: "rvrUnavailable", Try: func(cursor string) (int, bool) {
			return decode.RVRUnavailable(cursor)
		}},
		{Name: "presentWeather", CanRepeat: true, Try: func(cursor string) (int, bool) {
			pw, n, ok := decode.PresentWeather(cursor)
			if !ok {
				return 0, false
			}
			rpt.PresentWeather = append(rpt.PresentWeather, *pw)
			return n, true
		}},
		{Name: "skyCondition", CanRepeat: true, Try: func(cursor string) (int, bool) {
			sc, n, ok := decode.SkyCondition(cursor)
			if !ok {
				return 0, false
			}
			rpt.SkyConditions = append(rpt.SkyConditions, *sc)
			return n, true
		}},
		{Name: "temperature", Try: func(cursor string) (int, bool) {
			t, n, ok := decode.Temperature(cursor)
			if !ok {
				return 0, false
			}
			rpt.Temperature = t
			return n, true
		}},
		{Name: "altimeter", Try: func(cursor string) (int, bool) {
			p, n, ok := decode.Altimeter(cursor)
			if !ok {
				return 0, false
			}
			rpt.Pressure = p
			return n, true
		}},
		{Name: "noSigChange", Try: func(cursor string) (int, bool) {
			remark, n, ok := decode.NoSigChange(cursor)
			if !ok {
				return 0, false
			}
			rpt.Remarks = append(rpt.Remarks, remark)
			return n, true
		}},
	}
}

func metarRemarksHandlers(rpt *report.MetarReport) []Handler {
	handlers := make([]Handler, len(decode.RemarkHandlers))
	for i, h := range decode.RemarkHandlers {
		h := h
		handlers[i] = Handler{
			Name:      h.Name,
			CanRepeat: h.CanRepeat,
			Try: func(cursor string) (int, bool) {
				remark, n, ok := h.Decode(cursor)
				if !ok {
					return 0, false
				}
				rpt.Remarks = append(rpt.Remarks, remark)
				return n, true
			},
		}
	}
	return handlers
}
