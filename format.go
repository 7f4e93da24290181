package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/aerowx/noaaweather/report"
)

// Color definitions: a label color, a section-header color, and three
// age-based colors for how stale a report is.
var (
	labelColor   = color.New(color.FgCyan)
	sectionColor = color.New(color.FgBlue)
	dateColor    = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)

	freshColor   = color.New(color.FgGreen)
	agingColor   = color.New(color.FgYellow)
	expiredColor = color.New(color.FgRed)
)

// weatherDescriptions maps present-weather category codes to plain
// English.
var weatherDescriptions = map[string]string{
	"-": "light", "+": "heavy", "VC": "in the vicinity",
	"MI": "shallow", "PR": "partial", "BC": "patches", "DR": "low drifting",
	"BL": "blowing", "SH": "showers", "TS": "thunderstorm", "FZ": "freezing",
	"DZ": "drizzle", "RA": "rain", "SN": "snow", "SG": "snow grains",
	"IC": "ice crystals", "PL": "ice pellets", "GR": "hail", "GS": "small hail",
	"UP": "unknown precipitation", "BR": "mist", "FG": "fog", "FU": "smoke",
	"VA": "volcanic ash", "DU": "widespread dust", "SA": "sand", "HZ": "haze",
	"PY": "spray", "PO": "dust whirls", "SQ": "squalls", "FC": "funnel cloud",
	"SS": "sandstorm", "DS": "duststorm", "NSW": "no significant weather",
}

var skyCoverageDescriptions = map[string]string{
	report.CoverageFew:             "few clouds",
	report.CoverageScattered:       "scattered clouds",
	report.CoverageBroken:          "broken clouds",
	report.CoverageOvercast:        "overcast",
	report.CoverageSkyClear:        "sky clear",
	report.CoverageClear:           "clear below 12,000 ft",
	report.CoverageNoSignificant:   "no significant clouds",
	report.CoverageVerticalVisible: "vertical visibility",
}

func relativeTimeString(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff.Minutes())
	switch {
	case minutes < 0:
		return "(in the future)"
	case minutes < 1:
		return "(just now)"
	case minutes < 60:
		return fmt.Sprintf("(%d minutes ago)", minutes)
	case minutes < 1440:
		hours, mins := minutes/60, minutes%60
		if mins == 0 {
			return fmt.Sprintf("(%d hours ago)", hours)
		}
		return fmt.Sprintf("(%d hours, %d minutes ago)", hours, mins)
	default:
		days, hours := minutes/1440, (minutes%1440)/60
		if hours == 0 {
			return fmt.Sprintf("(%d days ago)", days)
		}
		return fmt.Sprintf("(%d days, %d hours ago)", days, hours)
	}
}

func ageColor(t, now time.Time) *color.Color {
	age := now.Sub(t)
	switch {
	case age <= 90*time.Minute:
		return freshColor
	case age <= 6*time.Hour:
		return agingColor
	default:
		return expiredColor
	}
}

func formatWind(w *report.Wind) string {
	if w == nil {
		return ""
	}
	var sb strings.Builder
	if w.DirectionDegrees == nil {
		sb.WriteString("Variable")
	} else {
		fmt.Fprintf(&sb, "From %d°", *w.DirectionDegrees)
	}
	fmt.Fprintf(&sb, " at %d %s", w.Speed, w.Unit)
	if w.Gust != nil {
		fmt.Fprintf(&sb, ", gusting to %d %s", *w.Gust, w.Unit)
	}
	if w.VariableDirection != nil {
		fmt.Fprintf(&sb, " (varying between %d° and %d°)", w.VariableDirection.From, w.VariableDirection.To)
	}
	return sb.String()
}

func formatWindShear(ws report.WindShear) string {
	switch {
	case ws.Altitude != nil:
		dir := "Variable"
		if ws.Wind != nil && ws.Wind.DirectionDegrees != nil {
			dir = fmt.Sprintf("From %d°", *ws.Wind.DirectionDegrees)
		}
		speed, unit := 0, "KT"
		if ws.Wind != nil {
			speed, unit = ws.Wind.Speed, ws.Wind.Unit
		}
		return fmt.Sprintf("At %d feet: %s at %d %s", *ws.Altitude*100, dir, speed, unit)
	case ws.Runway != "":
		return "Windshear on runway " + ws.Runway
	case ws.Phase == "ALL":
		return "All runways"
	default:
		return ws.Phase + " windshear"
	}
}

func formatVisibility(v *report.Visibility) string {
	if v == nil {
		return ""
	}
	if v.IsCAVOK {
		return "Greater than 10 km (CAVOK)"
	}
	prefix := ""
	if v.LessThan {
		prefix = "Less than "
	} else if v.GreaterThan {
		prefix = "Greater than "
	}
	unit := "statute miles"
	if v.Unit == "M" {
		unit = "meters"
	}
	desc := fmt.Sprintf("%s%s %s", prefix, formatDistance(v.DistanceValue), unit)
	if v.Direction != "" {
		desc += " to the " + v.Direction
	}
	if v.SpecialCondition == "NDV" {
		desc += " (no directional variation)"
	}
	return desc
}

func formatDistance(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func formatPresentWeather(pw report.PresentWeather) string {
	var parts []string
	if d, ok := weatherDescriptions[pw.Intensity]; ok {
		parts = append(parts, d)
	}
	for _, code := range []string{pw.Descriptor, pw.Precipitation, pw.Obscuration, pw.Other} {
		if code == "" {
			continue
		}
		if d, ok := weatherDescriptions[code]; ok {
			parts = append(parts, d)
		} else {
			parts = append(parts, code)
		}
	}
	if len(parts) == 0 {
		return pw.RawCode
	}
	return strings.Join(parts, " ")
}

func formatSkyCondition(sc report.SkyCondition) string {
	desc := skyCoverageDescriptions[sc.Coverage]
	if desc == "" {
		desc = sc.Coverage
	}
	if sc.HeightFeet != nil {
		desc = fmt.Sprintf("%s at %s feet", desc, formatNumberWithCommas(*sc.HeightFeet))
	}
	if sc.CloudType != "" {
		desc += " (" + sc.CloudType + ")"
	}
	return desc
}

func formatNumberWithCommas(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
		if len(s) > lead {
			sb.WriteString(",")
		}
	}
	for i := lead; i < len(s); i += 3 {
		sb.WriteString(s[i : i+3])
		if i+3 < len(s) {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

func formatTemperature(t *report.Temperature) string {
	if t == nil {
		return "Not available"
	}
	s := fmt.Sprintf("%d°C | %d°F", t.Celsius, t.Fahrenheit())
	if t.DewpointCelsius != nil {
		dewF, _ := t.DewpointFahrenheit()
		s += fmt.Sprintf(" (dewpoint %d°C | %d°F)", *t.DewpointCelsius, dewF)
		if spread, ok := t.Spread(); ok {
			s += fmt.Sprintf(", spread %.0fC", spread)
		}
	}
	return s
}

func formatPressure(p *report.Pressure) string {
	if p == nil {
		return ""
	}
	if p.Unit == report.UnitInchesHg {
		return fmt.Sprintf("%.2f inHg | %.1f hPa", p.Value, p.ToHectopascals())
	}
	return fmt.Sprintf("%.1f hPa | %.2f inHg", p.Value, p.ToInchesHg())
}

func formatRunwayVisualRange(rvr report.RunwayVisualRange) string {
	if rvr.IsCleared {
		return fmt.Sprintf("Runway %s: cleared", rvr.Runway)
	}
	prefix := ""
	switch rvr.Prefix {
	case "P":
		prefix = "more than "
	case "M":
		prefix = "less than "
	}
	if rvr.VariableLow != nil && rvr.VariableHigh != nil {
		return fmt.Sprintf("Runway %s: variable %d to %d feet", rvr.Runway, *rvr.VariableLow, *rvr.VariableHigh)
	}
	desc := fmt.Sprintf("Runway %s: %s%d feet", rvr.Runway, prefix, *rvr.VisualRangeFeet)
	switch rvr.Trend {
	case "U":
		desc += ", increasing"
	case "D":
		desc += ", decreasing"
	case "N":
		desc += ", no change"
	}
	return desc
}

// FormatMetar renders a fully decoded METAR/SPECI for the CLI with
// colorized section headers.
func FormatMetar(m report.MetarReport, now time.Time) string {
	var sb strings.Builder

	labelColor.Fprint(&sb, "Station: ")
	sb.WriteString(m.StationID)
	if m.ReportType != "METAR" {
		sb.WriteString(" (" + m.ReportType + ")")
	}
	if m.ReportModifier != "" {
		sb.WriteString(" [" + m.ReportModifier + "]")
	}
	sb.WriteString("\n")

	labelColor.Fprint(&sb, "Time: ")
	dateColor.Fprint(&sb, m.ObservationTime.Format("2006-01-02 15:04 UTC"))
	sb.WriteString(" ")
	ageColor(m.ObservationTime, now).Fprint(&sb, relativeTimeString(m.ObservationTime, now))
	sb.WriteString("\n")

	if windStr := formatWind(m.Wind); windStr != "" {
		labelColor.Fprint(&sb, "Wind: ")
		sb.WriteString(windStr + "\n")
	}
	if visStr := formatVisibility(m.Visibility); visStr != "" {
		labelColor.Fprint(&sb, "Visibility: ")
		sb.WriteString(visStr + "\n")
	}
	if len(m.PresentWeather) > 0 {
		var parts []string
		for _, pw := range m.PresentWeather {
			parts = append(parts, formatPresentWeather(pw))
		}
		labelColor.Fprint(&sb, "Weather: ")
		sb.WriteString(strings.Join(parts, ", ") + "\n")
	}
	if len(m.SkyConditions) > 0 {
		var parts []string
		for _, sc := range m.SkyConditions {
			parts = append(parts, formatSkyCondition(sc))
		}
		labelColor.Fprint(&sb, "Sky: ")
		sb.WriteString(strings.Join(parts, ", ") + "\n")
	}
	labelColor.Fprint(&sb, "Temperature: ")
	sb.WriteString(formatTemperature(m.Temperature) + "\n")
	if pressStr := formatPressure(m.Pressure); pressStr != "" {
		labelColor.Fprint(&sb, "Pressure: ")
		sb.WriteString(pressStr + "\n")
	}
	if len(m.WindShear) > 0 {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, "Wind Shear:")
		for _, ws := range m.WindShear {
			sb.WriteString("  " + formatWindShear(ws) + "\n")
		}
	}
	if len(m.RunwayVisualRange) > 0 {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, "Runway Visual Range:")
		for _, rvr := range m.RunwayVisualRange {
			sb.WriteString("  " + formatRunwayVisualRange(rvr) + "\n")
		}
	}
	if len(m.Remarks) > 0 {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, "Remarks:")
		for _, r := range m.Remarks {
			sb.WriteString("  " + r.Description + "\n")
		}
	}
	if len(m.UnparsedTokens) > 0 {
		sb.WriteString("\n")
		warnColor.Fprintln(&sb, "Unparsed tokens: "+strings.Join(m.UnparsedTokens, " "))
	}

	return sb.String()
}

func formatForecastPeriodHeader(p report.ForecastPeriod) string {
	switch p.ChangeIndicator {
	case report.ChangeBase:
		return "Base Forecast"
	case report.ChangeFM:
		return "From " + p.ChangeTime.Format("2006-01-02 15:04 UTC")
	case report.ChangeTempo:
		return fmt.Sprintf("Temporary %s to %s", p.PeriodStart.Format("01-02 15:04"), p.PeriodEnd.Format("01-02 15:04"))
	case report.ChangeBecmg:
		return fmt.Sprintf("Becoming %s to %s", p.PeriodStart.Format("01-02 15:04"), p.PeriodEnd.Format("01-02 15:04"))
	case report.ChangeProb:
		prob := 0
		if p.Probability != nil {
			prob = *p.Probability
		}
		return fmt.Sprintf("Probability %d%% %s to %s", prob, p.PeriodStart.Format("01-02 15:04"), p.PeriodEnd.Format("01-02 15:04"))
	default:
		return p.ChangeIndicator
	}
}

func formatConditions(c report.Conditions, sb *strings.Builder) {
	if windStr := formatWind(c.Wind); windStr != "" {
		sb.WriteString("    Wind: " + windStr + "\n")
	}
	if visStr := formatVisibility(c.Visibility); visStr != "" {
		sb.WriteString("    Visibility: " + visStr + "\n")
	}
	if len(c.PresentWeather) > 0 {
		var parts []string
		for _, pw := range c.PresentWeather {
			parts = append(parts, formatPresentWeather(pw))
		}
		sb.WriteString("    Weather: " + strings.Join(parts, ", ") + "\n")
	}
	if len(c.SkyConditions) > 0 {
		var parts []string
		for _, sc := range c.SkyConditions {
			parts = append(parts, formatSkyCondition(sc))
		}
		sb.WriteString("    Sky: " + strings.Join(parts, ", ") + "\n")
	}
	for _, ws := range c.WindShear {
		sb.WriteString("    " + formatWindShear(ws) + "\n")
	}
}

// FormatTaf renders a fully decoded TAF for the CLI.
func FormatTaf(t report.TafReport, now time.Time) string {
	var sb strings.Builder

	labelColor.Fprint(&sb, "Station: ")
	sb.WriteString(t.StationID)
	if t.ReportModifier != "" {
		sb.WriteString(" [" + t.ReportModifier + "]")
	}
	sb.WriteString("\n")

	labelColor.Fprint(&sb, "Issued: ")
	dateColor.Fprint(&sb, t.IssueTime.Format("2006-01-02 15:04 UTC"))
	sb.WriteString(" ")
	ageColor(t.IssueTime, now).Fprint(&sb, relativeTimeString(t.IssueTime, now))
	sb.WriteString("\n")

	labelColor.Fprint(&sb, "Valid: ")
	fmt.Fprintf(&sb, "%s to %s\n",
		t.ValidityPeriod.ValidFrom.Format("2006-01-02 15:04 UTC"),
		t.ValidityPeriod.ValidTo.Format("2006-01-02 15:04 UTC"))

	if t.MaxTemperature != nil {
		labelColor.Fprint(&sb, "Max Temp: ")
		fmt.Fprintf(&sb, "%d°C at %s\n", *t.MaxTemperature, t.MaxTemperatureTime.Format("2006-01-02 15:04 UTC"))
	}
	if t.MinTemperature != nil {
		labelColor.Fprint(&sb, "Min Temp: ")
		fmt.Fprintf(&sb, "%d°C at %s\n", *t.MinTemperature, t.MinTemperatureTime.Format("2006-01-02 15:04 UTC"))
	}

	for _, p := range t.ForecastPeriods {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, formatForecastPeriodHeader(p))
		formatConditions(p.Conditions, &sb)
	}

	if len(t.Remarks) > 0 {
		sb.WriteString("\n")
		sectionColor.Fprintln(&sb, "Remarks:")
		for _, r := range t.Remarks {
			sb.WriteString("  " + r.Description + "\n")
		}
	}
	if len(t.UnparsedTokens) > 0 {
		sb.WriteString("\n")
		warnColor.Fprintln(&sb, "Unparsed tokens: "+strings.Join(t.UnparsedTokens, " "))
	}

	return sb.String()
}
