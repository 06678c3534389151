package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("nope"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %q, want %q", got.Name, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got.Name)
	}
}

func TestNamesMatchesAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("len(Names) = %d, want %d", len(names), len(All))
	}
	if names[0] != "flexoki-dark" {
		t.Errorf("first theme = %q, want flexoki-dark", names[0])
	}
}
