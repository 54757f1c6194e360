package chunker

import (
	"strings"
	"testing"
)

func TestSplitBySentences_PacksWithinLimit(t *testing.T) {
	got := SplitBySentences("Uno. Dos. Tres.", 100)
	want := []string{"Uno. Dos. Tres."}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitBySentences_SplitsAtBoundaries(t *testing.T) {
	got := SplitBySentences("Uno dos. Tres cuatro. Cinco.", 10)
	want := []string{"Uno dos.", "Tres cuatro.", "Cinco."}
	if len(got) != len(want) {
		t.Fatalf("got %d fragments %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d: got %q, want %q", i, got[i], want[i])
		}
	}
	// No word was cut: fragments rejoin into the original text.
	if rejoined := strings.Join(got, " "); rejoined != "Uno dos. Tres cuatro. Cinco." {
		t.Errorf("fragments do not rejoin cleanly: %q", rejoined)
	}
}

func TestSplitBySentences_OversizedSentenceKeptWhole(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("palabra ", 40)) // well over 100 chars, no terminator
	got := SplitBySentences("Corta. "+long, 100)
	if len(got) != 2 {
		t.Fatalf("got %d fragments, want 2: %v", len(got), got)
	}
	if got[0] != "Corta." {
		t.Errorf("first fragment: got %q", got[0])
	}
	if got[1] != long {
		t.Errorf("oversized sentence was modified: got %q", got[1])
	}
	if charLen(got[1]) <= 100 {
		t.Errorf("expected oversized fragment, got %d chars", charLen(got[1]))
	}
}

func TestSplitBySentences_Empty(t *testing.T) {
	if got := SplitBySentences("   ", 50); len(got) != 0 {
		t.Errorf("expected no fragments for blank input, got %v", got)
	}
}
