package parser

import (
	"time"

	"github.com/aerowx/noaaweather/pattern"
)

// reconstructObservationTime rebuilds the full observation timestamp
// from a day-of-month/hour/minute triple against the clock anchor
// now. METAR headers carry only the day of month, not the month or
// year, so the candidate is built in now's month first; if that
// candidate would lie in the future, or now's day already precedes
// the report's day (meaning the report rolled over from the previous
// month), the candidate is rebuilt one month earlier, wrapping the
// year at January.
func reconstructObservationTime(now time.Time, day, hour, minute int) time.Time {
	year, month := now.Year(), now.Month()
	candidate := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if candidate.After(now) || now.Day() < day {
		month--
		if month < time.January {
			month = time.December
			year--
		}
		candidate = time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	}
	return candidate
}

// resolveTafDate rebuilds a TAF validity-period timestamp (only a day
// of month, hour, and no minute are coded) against an anchor — the
// TAF's own issue time. An hour of 24 means midnight at the start of
// the following day. Because validity dates are always within a few
// days of the issue time, a candidate that lands more than five days
// before the anchor is assumed to belong to the following month
// rather than the current one.
func resolveTafDate(anchor time.Time, day, hour int) time.Time {
	return resolveTafDateTime(anchor, day, hour, 0)
}

// resolveTafDateTime is resolveTafDate with an explicit minute, for
// the FM change group's DDHHMM form.
func resolveTafDateTime(anchor time.Time, day, hour, minute int) time.Time {
	if hour == 24 {
		day++
		hour = 0
	}
	year, month := anchor.Year(), anchor.Month()
	candidate := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	if candidate.Before(anchor.AddDate(0, 0, -5)) {
		month++
		if month > time.December {
			month = time.January
			year++
		}
		candidate = time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	}
	return candidate
}

// parseExternalTimestamp consumes an optional caller-supplied
// "YYYY/MM/DD HH:MM" clock-anchor prefix, returning the parsed time,
// whether it was present, and the cursor with it removed.
func parseExternalTimestamp(cursor string) (clock time.Time, rest string, ok bool) {
	groups, n, matched := pattern.Groups(pattern.ExternalTimestamp, cursor)
	if !matched {
		return time.Time{}, cursor, false
	}
	t, err := time.Parse("2006/01/02 15:04", groups["year"]+"/"+groups["month"]+"/"+groups["day"]+" "+groups["hour"]+":"+groups["minute"])
	if err != nil {
		return time.Time{}, cursor, false
	}
	return t, cursor[n:], true
}
