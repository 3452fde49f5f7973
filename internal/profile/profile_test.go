package profile

import (
	"testing"

	"github.com/AnyUserName/codecq/internal/fidelity"
)

func TestReferenceMatchesEngineDefaults(t *testing.T) {
	got := Get("reference").SSIMOptions()
	if got != fidelity.DefaultSSIMOptions() {
		t.Errorf("reference options: got %+v, want %+v", got, fidelity.DefaultSSIMOptions())
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	p := Get("custom")
	if p.Name != "custom" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.WindowSize != 11 || p.K2 != 0.04 {
		t.Errorf("fallback parameters: got %+v", p)
	}
	if Known("custom") {
		t.Error("custom reported as built-in")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 3 {
		t.Fatalf("names: got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("not sorted: %v", names)
		}
	}
	for _, n := range names {
		if w := Get(n).WindowSize; w%2 == 0 {
			t.Errorf("profile %s: even window %d", n, w)
		}
	}
}
