package parser

import (
	"regexp"
	"testing"
	"time"

	"github.com/aerowx/noaaweather/internal/testdata"
	"github.com/aerowx/noaaweather/report"
)

var stationIDPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)

func TestFixtureMetarsAllParse(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	scanner := testdata.METAR(t)
	count := 0
	for scanner.Scan() {
		raw := scanner.Text()
		if raw == "" {
			continue
		}
		count++
		result := ParseMetar(raw, now)
		if result.IsFailure() {
			t.Fatalf("fixture %q failed to parse: %v", raw, result.Error())
		}
		rpt, _ := result.Data()
		if !stationIDPattern.MatchString(rpt.StationID) {
			t.Fatalf("fixture %q: stationID %q doesn't match the ICAO shape", raw, rpt.StationID)
		}
		if rpt.ObservationTime.After(now) {
			t.Fatalf("fixture %q: observationTime %v is after the parse clock", raw, rpt.ObservationTime)
		}
		if now.Sub(rpt.ObservationTime) >= 32*24*time.Hour {
			t.Fatalf("fixture %q: observationTime %v is more than 32 days before the parse clock", raw, rpt.ObservationTime)
		}
	}
	if count == 0 {
		t.Fatal("expected at least one fixture METAR")
	}
}

func TestFixtureTafsAllParse(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	scanner := testdata.TAF(t)
	count := 0
	for scanner.Scan() {
		raw := scanner.Text()
		if raw == "" {
			continue
		}
		count++
		result := ParseTaf(raw, now)
		if result.IsFailure() {
			t.Fatalf("fixture %q failed to parse: %v", raw, result.Error())
		}
		rpt, _ := result.Data()
		if !stationIDPattern.MatchString(rpt.StationID) {
			t.Fatalf("fixture %q: stationID %q doesn't match the ICAO shape", raw, rpt.StationID)
		}
		if !rpt.ValidityPeriod.ValidTo.After(rpt.ValidityPeriod.ValidFrom) {
			t.Fatalf("fixture %q: validTo %v is not after validFrom %v", raw, rpt.ValidityPeriod.ValidTo, rpt.ValidityPeriod.ValidFrom)
		}
		if len(rpt.ForecastPeriods) == 0 || rpt.ForecastPeriods[0].ChangeIndicator != report.ChangeBase {
			t.Fatalf("fixture %q: forecastPeriods[0] is not the base forecast: %+v", raw, rpt.ForecastPeriods)
		}
	}
	if count == 0 {
		t.Fatal("expected at least one fixture TAF")
	}
}

// TestParseMetarIsIdempotent checks that re-parsing a report's own
// RawData (the round trip a retry or cache-refill would perform)
// yields the same decoded station, observation time, and token counts.
func TestParseMetarIsIdempotent(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	raw := "KJFK 291651Z 18012G20KT 10SM FEW050 SCT100 BKN250 24/18 A2992 RMK AO2 SLP132"

	first := ParseMetar(raw, now)
	if first.IsFailure() {
		t.Fatalf("first parse failed: %v", first.Error())
	}
	firstReport, _ := first.Data()

	second := ParseMetar(firstReport.RawData, now)
	if second.IsFailure() {
		t.Fatalf("second parse failed: %v", second.Error())
	}
	secondReport, _ := second.Data()

	if firstReport.StationID != secondReport.StationID {
		t.Fatalf("stationID mismatch: %q vs %q", firstReport.StationID, secondReport.StationID)
	}
	if !firstReport.ObservationTime.Equal(secondReport.ObservationTime) {
		t.Fatalf("observationTime mismatch: %v vs %v", firstReport.ObservationTime, secondReport.ObservationTime)
	}
	if len(firstReport.Remarks) != len(secondReport.Remarks) {
		t.Fatalf("remarks count mismatch: %d vs %d", len(firstReport.Remarks), len(secondReport.Remarks))
	}
	if len(firstReport.UnparsedTokens) != len(secondReport.UnparsedTokens) {
		t.Fatalf("unparsedTokens count mismatch: %d vs %d", len(firstReport.UnparsedTokens), len(secondReport.UnparsedTokens))
	}
}
