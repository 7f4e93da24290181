package decode

import "testing"

func TestVisibilityCavok(t *testing.T) {
	v, _, ok := Visibility("CAVOK Q1013")
	if !ok || !v.IsCAVOK {
		t.Fatalf("expected CAVOK match, got %+v ok=%v", v, ok)
	}
}

func TestVisibilityUnknownIsSkipped(t *testing.T) {
	v, n, ok := Visibility("//// RMK")
	if !ok {
		t.Fatal("expected the token to be consumed")
	}
	if v != nil {
		t.Fatalf("expected nil value for unresolvable visibility, got %+v", v)
	}
	if n != len("//// ") {
		t.Fatalf("matchLen = %d", n)
	}
}

func TestVisibilityWholeStatuteMiles(t *testing.T) {
	v, _, ok := Visibility("10SM FEW250")
	if !ok {
		t.Fatal("expected match")
	}
	if v.DistanceValue != 10 || v.Unit != "SM" {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityGreaterThanStatuteMiles(t *testing.T) {
	v, _, ok := Visibility("P6SM SKC")
	if !ok {
		t.Fatal("expected match")
	}
	if !v.GreaterThan || v.DistanceValue != 6 {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityFraction(t *testing.T) {
	v, _, ok := Visibility("1/2SM +TSRA")
	if !ok {
		t.Fatal("expected match")
	}
	if v.DistanceValue != 0.5 || v.Unit != "SM" {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityWholeAndFraction(t *testing.T) {
	v, _, ok := Visibility("1 1/2SM BR")
	if !ok {
		t.Fatal("expected match")
	}
	if v.DistanceValue != 1.5 {
		t.Fatalf("distance = %v, want 1.5", v.DistanceValue)
	}
}

func TestVisibilityLessThanFraction(t *testing.T) {
	v, _, ok := Visibility("M1/4SM FG")
	if !ok {
		t.Fatal("expected match")
	}
	if !v.LessThan || v.DistanceValue != 0.25 {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityMeters(t *testing.T) {
	v, _, ok := Visibility("9999 FEW020")
	if !ok {
		t.Fatal("expected match")
	}
	if v.DistanceValue != 9999 || v.Unit != "M" {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityMetersWithDirection(t *testing.T) {
	v, _, ok := Visibility("4000NE BR")
	if !ok {
		t.Fatal("expected match")
	}
	if v.DistanceValue != 4000 || v.Direction != "NE" {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityNDV(t *testing.T) {
	v, _, ok := Visibility("9999NDV BR")
	if !ok {
		t.Fatal("expected match")
	}
	if v.SpecialCondition != "NDV" || v.DistanceValue != 9999 {
		t.Fatalf("unexpected visibility: %+v", v)
	}
}

func TestVisibilityNoMatch(t *testing.T) {
	if _, _, ok := Visibility("FEW250 "); ok {
		t.Fatal("expected no match")
	}
}
