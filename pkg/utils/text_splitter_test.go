package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short", 100, 10)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Fatalf("chunks = %v, want [short]", chunks)
	}
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("a", 25)
	chunks := SplitText(text, 10, 3)

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 10 {
			t.Errorf("chunk %d longer than chunkSize: %d", i, len(c))
		}
	}

	// Consecutive chunks share the overlap region.
	first := chunks[0]
	second := chunks[1]
	if !strings.HasPrefix(second, first[len(first)-3:]) {
		t.Error("second chunk does not start with the overlap of the first")
	}
}

func TestSplitTextCoversWholeInput(t *testing.T) {
	text := "The team reviewed the battery chemistry knowledge gap before the integration event."
	chunks := SplitText(text, 20, 5)

	last := chunks[len(chunks)-1]
	if !strings.HasSuffix(text, last) {
		t.Error("last chunk must end where the text ends")
	}
}

func TestSplitTextDegenerateOverlap(t *testing.T) {
	// overlap >= chunkSize must not loop forever.
	chunks := SplitText(strings.Repeat("x", 30), 10, 10)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 non-overlapping chunks, got %d", len(chunks))
	}
}

func TestSplitTextMultibyte(t *testing.T) {
	text := strings.Repeat("領域", 12) // 24 runes
	chunks := SplitText(text, 100, 0)
	if len(chunks) != 1 {
		t.Fatalf("expected single chunk, got %d", len(chunks))
	}
}
