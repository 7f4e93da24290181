package parser

import (
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/ptr"

	"github.com/aerowx/noaaweather/decode"
	"github.com/aerowx/noaaweather/pattern"
	"github.com/aerowx/noaaweather/report"
)

// SourceTypeTaf identifies the TAF parser in a ParserException.
const SourceTypeTaf = "NOAA_TAF"

// CanParseTaf reports whether raw starts (after an optional external
// timestamp) with the TAF keyword.
func CanParseTaf(raw string) bool {
	cursor := strings.ToUpper(strings.TrimSpace(raw))
	if _, rest, ok := parseExternalTimestamp(cursor); ok {
		cursor = strings.TrimSpace(rest)
	}
	_, _, ok := pattern.Groups(pattern.ReportKeywordTaf, cursor)
	return ok
}

// ParseTaf decodes a single TAF report. now anchors the issue-time
// reconstruction; it is never read from the system clock inside the
// decoder.
func ParseTaf(raw string, now time.Time) ParseResult[report.TafReport] {
	return safeParse(SourceTypeTaf, raw, func() ParseResult[report.TafReport] {
		return parseTaf(raw, now)
	})
}

func parseTaf(raw string, now time.Time) ParseResult[report.TafReport] {
	if strings.TrimSpace(raw) == "" {
		return Failure[report.TafReport](&ParserException{
			ParserType: SourceTypeTaf,
			Message:    "Raw data cannot be null or empty",
			RawData:    raw,
		})
	}

	rawTrimmed := strings.TrimSpace(raw)
	cursor := strings.ToUpper(rawTrimmed)

	if !CanParseTaf(cursor) {
		return Failure[report.TafReport](&ParserException{
			ParserType: SourceTypeTaf,
			Message:    "Data is not a valid TAF report",
			RawData:    raw,
		})
	}

	clock := now
	if externalClock, rest, ok := parseExternalTimestamp(cursor); ok {
		clock = externalClock
		cursor = strings.TrimSpace(rest)
	}

	_, n, _ := pattern.Groups(pattern.ReportKeywordTaf, cursor)
	cursor = strings.TrimSpace(cursor[n:])

	rpt := report.TafReport{RawData: rawTrimmed, ReportType: "TAF"}

	if groups, n, ok := pattern.Groups(pattern.Amend, cursor); ok {
		rpt.ReportModifier = groups["modifier"]
		cursor = strings.TrimSpace(cursor[n:])
	}

	stGroups, n, ok := pattern.Groups(pattern.StationDayTime, cursor)
	if !ok {
		return Failure[report.TafReport](&ParserException{
			ParserType: SourceTypeTaf,
			Message:    "Could not extract station ID from TAF",
			RawData:    raw,
		})
	}
	rpt.StationID = stGroups["station"]
	day, _ := strconv.Atoi(stGroups["zday"])
	hour, _ := strconv.Atoi(stGroups["zhour"])
	minute, _ := strconv.Atoi(stGroups["zmin"])
	rpt.IssueTime = reconstructObservationTime(clock, day, hour, minute)
	cursor = strings.TrimSpace(cursor[n:])

	valGroups, n, ok := pattern.Groups(pattern.Validity, cursor)
	if !ok {
		return Failure[report.TafReport](&ParserException{
			ParserType: SourceTypeTaf,
			Message:    "Could not extract validity period from TAF",
			RawData:    raw,
		})
	}
	fromDay, _ := strconv.Atoi(valGroups["fromday"])
	fromHour, _ := strconv.Atoi(valGroups["fromhour"])
	toDay, _ := strconv.Atoi(valGroups["today"])
	toHour, _ := strconv.Atoi(valGroups["tohour"])
	rpt.ValidityPeriod = report.ValidityPeriod{
		ValidFrom: resolveTafDate(rpt.IssueTime, fromDay, fromHour),
		ValidTo:   resolveTafDate(rpt.IssueTime, toDay, toHour),
	}
	cursor = strings.TrimSpace(cursor[n:])

	rpt.ForecastPeriods = []report.ForecastPeriod{{ChangeIndicator: report.ChangeBase}}
	currentIdx := 0

	bodyHandlers := tafBodyHandlers(&rpt, &currentIdx)
	remarksHandlers := metarStyleTafRemarksHandlers(&rpt)
	unparsedBody, unparsedRemarks := runBody(cursor, bodyHandlers, remarksHandlers)
	rpt.UnparsedTokens = append(unparsedBody, unparsedRemarks...)

	return Success(rpt)
}

func tafBodyHandlers(rpt *report.TafReport, currentIdx *int) []Handler {
	current := func() *report.ForecastPeriod { return &rpt.ForecastPeriods[*currentIdx] }

	return []Handler{
		{Name: "fm", CanRepeat: true, Try: func(cursor string) (int, bool) {
			groups, n, ok := pattern.Groups(pattern.FM, cursor)
			if !ok {
				return 0, false
			}
			day, _ := strconv.Atoi(groups["day"])
			hour, _ := strconv.Atoi(groups["hour"])
			minute, _ := strconv.Atoi(groups["minute"])
			t := resolveTafDateTime(rpt.IssueTime, day, hour, minute)
			rpt.ForecastPeriods = append(rpt.ForecastPeriods, report.ForecastPeriod{
				ChangeIndicator: report.ChangeFM,
				ChangeTime:      &t,
			})
			*currentIdx = len(rpt.ForecastPeriods) - 1
			return n, true
		}},
		{Name: "tempo", CanRepeat: true, Try: func(cursor string) (int, bool) {
			_, n, ok := pattern.Groups(pattern.Tempo, cursor)
			if !ok {
				return 0, false
			}
			rpt.ForecastPeriods = append(rpt.ForecastPeriods, report.ForecastPeriod{ChangeIndicator: report.ChangeTempo})
			*currentIdx = len(rpt.ForecastPeriods) - 1
			return n, true
		}},
		{Name: "becmg", CanRepeat: true, Try: func(cursor string) (int, bool) {
			_, n, ok := pattern.Groups(pattern.Becmg, cursor)
			if !ok {
				return 0, false
			}
			rpt.ForecastPeriods = append(rpt.ForecastPeriods, report.ForecastPeriod{ChangeIndicator: report.ChangeBecmg})
			*currentIdx = len(rpt.ForecastPeriods) - 1
			return n, true
		}},
		{Name: "prob", CanRepeat: true, Try: func(cursor string) (int, bool) {
			groups, n, ok := pattern.Groups(pattern.Prob, cursor)
			if !ok {
				return 0, false
			}
			probability, _ := strconv.Atoi(groups["probability"])
			rpt.ForecastPeriods = append(rpt.ForecastPeriods, report.ForecastPeriod{
				ChangeIndicator: report.ChangeProb,
				Probability:     ptr.To(probability),
			})
			*currentIdx = len(rpt.ForecastPeriods) - 1
			return n, true
		}},
		{Name: "periodValidity", CanRepeat: true, Try: func(cursor string) (int, bool) {
			period := current()
			if period.ChangeIndicator == report.ChangeBase || period.ChangeIndicator == report.ChangeFM {
				return 0, false
			}
			if period.PeriodStart != nil {
				return 0, false
			}
			groups, n, ok := pattern.Groups(pattern.Validity, cursor)
			if !ok {
				return 0, false
			}
			fromDay, _ := strconv.Atoi(groups["fromday"])
			fromHour, _ := strconv.Atoi(groups["fromhour"])
			toDay, _ := strconv.Atoi(groups["today"])
			toHour, _ := strconv.Atoi(groups["tohour"])
			start := resolveTafDate(rpt.IssueTime, fromDay, fromHour)
			end := resolveTafDate(rpt.IssueTime, toDay, toHour)
			period.PeriodStart = &start
			period.PeriodEnd = &end
			return n, true
		}},
		{Name: "tempForecast", CanRepeat: true, Try: func(cursor string) (int, bool) {
			groups, n, ok := pattern.Groups(pattern.TempForecast, cursor)
			if !ok {
				return 0, false
			}
			value, _ := strconv.Atoi(groups["value"])
			if groups["sign"] == "M" {
				value = -value
			}
			day, _ := strconv.Atoi(groups["day"])
			hour, _ := strconv.Atoi(groups["hour"])
			t := resolveTafDateTime(rpt.IssueTime, day, hour, 0)
			if groups["which"] == "TX" {
				rpt.MaxTemperature = ptr.To(value)
				rpt.MaxTemperatureTime = &t
			} else {
				rpt.MinTemperature = ptr.To(value)
				rpt.MinTemperatureTime = &t
			}
			return n, true
		}},
		{Name: "wind", CanRepeat: true, Try: func(cursor string) (int, bool) {
			w, n, ok := decode.Wind(cursor)
			if !ok {
				return 0, false
			}
			current().Conditions.Wind = w
			return n, true
		}},
		{Name: "windShear", CanRepeat: true, Try: func(cursor string) (int, bool) {
			ws, n, ok := decode.WindShear(cursor)
			if !ok {
				return 0, false
			}
			period := current()
			period.Conditions.WindShear = append(period.Conditions.WindShear, *ws)
			return n, true
		}},
		{Name: "visibility", CanRepeat: true, Try: func(cursor string) (int, bool) {
			v, n, ok := decode.Visibility(cursor)
			if !ok {
				return 0, false
			}
			current().Conditions.Visibility = v
			return n, true
		}},
		{Name: "presentWeather", CanRepeat: true, Try: func(cursor string) (int, bool) {
			pw, n, ok := decode.PresentWeather(cursor)
			if !ok {
				return 0, false
			}
			period := current()
			period.Conditions.PresentWeather = append(period.Conditions.PresentWeather, *pw)
			return n, true
		}},
		{Name: "skyCondition", CanRepeat: true, Try: func(cursor string) (int, bool) {
			sc, n, ok := decode.SkyCondition(cursor)
			if !ok {
				return 0, false
			}
			period := current()
			period.Conditions.SkyConditions = append(period.Conditions.SkyConditions, *sc)
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

func metarStyleTafRemarksHandlers(rpt *report.TafReport) []Handler {
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
