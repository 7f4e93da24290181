package decode

import "testing"

func TestRunwayVisualRangeSimple(t *testing.T) {
	rvr, _, ok := RunwayVisualRange("R28L/4000FT ")
	if !ok {
		t.Fatal("expected match")
	}
	if rvr.Runway != "28L" || rvr.VisualRangeFeet == nil || *rvr.VisualRangeFeet != 4000 {
		t.Fatalf("unexpected rvr: %+v", rvr)
	}
}

func TestRunwayVisualRangeVariable(t *testing.T) {
	rvr, _, ok := RunwayVisualRange("R28L/2000V4000FT ")
	if !ok {
		t.Fatal("expected match")
	}
	if rvr.VariableLow == nil || *rvr.VariableLow != 2000 {
		t.Fatalf("variable low = %v, want 2000", rvr.VariableLow)
	}
	if rvr.VariableHigh == nil || *rvr.VariableHigh != 4000 {
		t.Fatalf("variable high = %v, want 4000", rvr.VariableHigh)
	}
}

func TestRunwayVisualRangeCleared(t *testing.T) {
	rvr, _, ok := RunwayVisualRange("R24C/CLRD62 ")
	if !ok {
		t.Fatal("expected match")
	}
	if !rvr.IsCleared || rvr.Runway != "24C" {
		t.Fatalf("unexpected rvr: %+v", rvr)
	}
}

func TestRunwayVisualRangeTrend(t *testing.T) {
	rvr, _, ok := RunwayVisualRange("R28L/4000FT/D ")
	if !ok {
		t.Fatal("expected match")
	}
	if rvr.Trend != "D" {
		t.Fatalf("trend = %q, want D", rvr.Trend)
	}
}

func TestRVRUnavailable(t *testing.T) {
	n, ok := RVRUnavailable("RVRNO ")
	if !ok {
		t.Fatal("expected match")
	}
	if n != len("RVRNO ") {
		t.Fatalf("matchLen = %d", n)
	}
}

func TestRVRUnavailableNoMatch(t *testing.T) {
	if _, ok := RVRUnavailable("10SM "); ok {
		t.Fatal("expected no match")
	}
}
