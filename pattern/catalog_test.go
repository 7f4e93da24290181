package pattern

import "testing"

func TestGroupsMatchesAtStartOnly(t *testing.T) {
	groups, n, ok := Groups(Wind, "28016KT 10SM")
	if !ok {
		t.Fatal("expected match")
	}
	if groups["dir"] != "280" || groups["speed"] != "16" || groups["units"] != "KT" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if n != len("28016KT ") {
		t.Fatalf("matchLen = %d, want %d", n, len("28016KT "))
	}
}

func TestGroupsRejectsNonPrefixMatch(t *testing.T) {
	_, _, ok := Groups(Wind, "10SM 28016KT")
	if ok {
		t.Fatal("expected no match when wind is not at the start")
	}
}

func TestGroupUnknownNamePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unknown group name")
		}
	}()
	Group(Wind, "28016KT ", "nope")
}

func TestGroupKnownNameAbsent(t *testing.T) {
	v, present := Group(Wind, "28016KT ", "gust")
	if present || v != "" {
		t.Fatalf("expected absent gust group, got %q present=%v", v, present)
	}
}

func TestVRBWindMatches(t *testing.T) {
	groups, _, ok := Groups(Wind, "VRB03KT ")
	if !ok || groups["dir"] != "VRB" {
		t.Fatalf("expected VRB direction, got %+v ok=%v", groups, ok)
	}
}

func TestStationDayTimeGroups(t *testing.T) {
	groups, _, ok := Groups(StationDayTime, "KJFK 251651Z ")
	if !ok {
		t.Fatal("expected match")
	}
	want := map[string]string{"station": "KJFK", "zday": "25", "zhour": "16", "zmin": "51"}
	for k, v := range want {
		if groups[k] != v {
			t.Errorf("group %s = %q, want %q", k, groups[k], v)
		}
	}
}

func TestTafValidityGroups(t *testing.T) {
	groups, _, ok := Groups(Validity, "1518/1624 ")
	if !ok {
		t.Fatal("expected match")
	}
	if groups["fromday"] != "15" || groups["fromhour"] != "18" || groups["today"] != "16" || groups["tohour"] != "24" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestUnparsedConsumesOneToken(t *testing.T) {
	_, n, ok := Groups(Unparsed, "GIBBERISH123 REST")
	if !ok {
		t.Fatal("expected unparsed to match any token")
	}
	if n != len("GIBBERISH123 ") {
		t.Fatalf("matchLen = %d, want %d", n, len("GIBBERISH123 "))
	}
}
