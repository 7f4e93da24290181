package decode

import "testing"

func TestRemarkAuto(t *testing.T) {
	r, n, ok := remarkAuto("AO2 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "automated station with precipitation discriminator" {
		t.Fatalf("description = %q", r.Description)
	}
	if r.Raw != "AO2" {
		t.Fatalf("raw = %q, want AO2", r.Raw)
	}
	if n != len("AO2 ") {
		t.Fatalf("matchLen = %d", n)
	}
}

func TestRemarkPeakWind(t *testing.T) {
	r, _, ok := remarkPeakWind("PK WND 28045/1523 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "peak wind 1523 at 280 degrees 45 knots" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkWindShiftWithFrontalPassage(t *testing.T) {
	r, _, ok := remarkWindShift("WSHFT 1530 FROPA ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "wind shift at 1530 with frontal passage" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkLightning(t *testing.T) {
	r, _, ok := remarkLightning("OCNL LTGICCG DSNT SE ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "OCNL lightning (ICCG) DSNT SE" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkSeaLevelPressure(t *testing.T) {
	r, _, ok := remarkSeaLevelPressure("SLP128 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "sea level pressure 1012.8 hPa" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkTemp1Hr(t *testing.T) {
	r, _, ok := remarkTemp1Hr("T00641011 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "hourly temperature 6.4C dewpoint -1.1C" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkTemp6HrMax(t *testing.T) {
	r, _, ok := remarkTemp6HrMaxMin("10046 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "6-hour maximum temperature 4.6C" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkTemp6HrMin(t *testing.T) {
	r, _, ok := remarkTemp6HrMaxMin("21012 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "6-hour minimum temperature -1.2C" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkTemp24HrMaxMin(t *testing.T) {
	r, _, ok := remarkTemp24HrMaxMin("400461012 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "24-hour maximum 4.6C minimum -1.2C" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkPress3Hr(t *testing.T) {
	r, _, ok := remarkPress3Hr("52013 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "3-hour pressure tendency code 2, change 1.3 hPa" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkPrecip1Hr(t *testing.T) {
	r, _, ok := remarkPrecip1Hr("P0123 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "hourly precipitation 1.23 in" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkPrecip24Hr(t *testing.T) {
	r, _, ok := remarkPrecip24Hr("70123 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "24-hour precipitation 1.23 in" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkSnowDepth(t *testing.T) {
	r, _, ok := remarkSnowDepth("4/012 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "snow depth 012 in" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkSnowIncrease(t *testing.T) {
	r, _, ok := remarkSnowIncrease("SNINCR 4/10 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "snow increasing rapidly 4 in over 10 hr" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkCeiling(t *testing.T) {
	r, _, ok := remarkCeiling("CIG 005 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "variable ceiling 500 ft" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkIceAccretion(t *testing.T) {
	r, _, ok := remarkIceAccretion("I104 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "ice accretion 04 in over 1 hr" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkRecentWeather(t *testing.T) {
	r, _, ok := remarkRecentWeather("RETS ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "recent weather TS" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkMaintenanceNeeded(t *testing.T) {
	r, _, ok := remarkMaintenanceNeeded("$ ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "station requires maintenance" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkNoSigChange(t *testing.T) {
	r, _, ok := NoSigChange("NOSIG ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "no significant change expected" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkHailSize(t *testing.T) {
	r, _, ok := remarkHailSize("GR1 3/4 ")
	if !ok {
		t.Fatal("expected match")
	}
	if r.Description != "largest hail 1 3/4 in" {
		t.Fatalf("description = %q", r.Description)
	}
}

func TestRemarkHailSizeNoSizeRejected(t *testing.T) {
	if _, _, ok := remarkHailSize("GR "); ok {
		t.Fatal("expected no match without a hail size")
	}
}
