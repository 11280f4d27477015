package vibes

import "testing"

func TestProfileTableComplete(t *testing.T) {
	if len(profiles) != 18 {
		t.Fatalf("expected 18 vibe profiles, got %d", len(profiles))
	}
	for key, p := range profiles {
		if p.Name != key {
			t.Errorf("profile %q has mismatched name %q", key, p.Name)
		}
		if p.ClipCountMin <= 0 || p.ClipCountMax < p.ClipCountMin {
			t.Errorf("profile %q has invalid clip count bounds %d..%d", key, p.ClipCountMin, p.ClipCountMax)
		}
		if !(p.Act1AvgCutS >= p.Act2AvgCutS && p.Act2AvgCutS >= p.Act3AvgCutS) {
			t.Errorf("profile %q violates the shrinking pacing curve: %.1f/%.1f/%.1f",
				key, p.Act1AvgCutS, p.Act2AvgCutS, p.Act3AvgCutS)
		}
		if p.Act3AvgCutS <= 0 {
			t.Errorf("profile %q has non-positive act3 target", key)
		}
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup("action")
	if err != nil {
		t.Fatalf("Lookup(action): %v", err)
	}
	if p.Act1AvgCutS != 4.0 || p.Act3AvgCutS != 1.2 {
		t.Fatalf("action cut targets = %.1f/%.1f, want 4.0/1.2", p.Act1AvgCutS, p.Act3AvgCutS)
	}

	p, err = Lookup("Adventure")
	if err != nil {
		t.Fatalf("Lookup(Adventure): %v", err)
	}
	if p.PrimaryTransition != Crossfade {
		t.Fatalf("adventure primary transition = %s, want crossfade", p.PrimaryTransition)
	}

	if _, err := Lookup("noir"); err == nil {
		t.Fatal("expected error for unknown vibe")
	}
}

func TestLookupAliases(t *testing.T) {
	for _, name := range []string{"scifi", "sci_fi", "SCI-FI"} {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if p.Name != "sci-fi" {
			t.Fatalf("Lookup(%q) resolved to %q, want sci-fi", name, p.Name)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 18 {
		t.Fatalf("expected 18 names, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}
