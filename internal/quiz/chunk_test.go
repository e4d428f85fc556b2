package quiz

import (
	"strings"
	"testing"
)

func TestSplitText_SmallInputSingleChunk(t *testing.T) {
	chunks := SplitText("short text", ChunkSize, ChunkOverlap)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0] != "short text" {
		t.Errorf("chunk content mutated: %q", chunks[0])
	}
}

func TestSplitText_OverlappingChunksCoverInput(t *testing.T) {
	text := strings.Repeat("abcdefghij", 100) // 1000 chars
	chunks := SplitText(text, 300, 50)

	if len(chunks) < 3 {
		t.Fatalf("chunks = %d, want at least 3", len(chunks))
	}
	// First chunk starts at the beginning, last chunk ends at the end.
	if !strings.HasPrefix(text, chunks[0]) {
		t.Error("first chunk must be a prefix of the input")
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1]) {
		t.Error("last chunk must be a suffix of the input")
	}
	// Consecutive chunks share the overlap region.
	for i := 1; i < len(chunks); i++ {
		tail := chunks[i-1][len(chunks[i-1])-50:]
		if !strings.HasPrefix(chunks[i], tail) {
			t.Errorf("chunk %d does not overlap its predecessor", i)
		}
	}
}

func TestApportion_SumsToTotal(t *testing.T) {
	cases := []struct {
		total, parts int
	}{
		{10, 3}, {1, 1}, {150, 7}, {5, 5}, {17, 4}, {100, 9},
	}
	for _, c := range cases {
		counts := Apportion(c.total, c.parts)
		if len(counts) != c.parts {
			t.Fatalf("Apportion(%d, %d): %d parts", c.total, c.parts, len(counts))
		}
		sum := 0
		for _, n := range counts {
			sum += n
		}
		if sum != c.total {
			t.Errorf("Apportion(%d, %d) sums to %d", c.total, c.parts, sum)
		}
	}
}

func TestApportion_RemainderGoesToFirstChunks(t *testing.T) {
	counts := Apportion(10, 3)
	want := []int{4, 3, 3}
	for i, n := range counts {
		if n != want[i] {
			t.Fatalf("counts = %v, want %v", counts, want)
		}
	}
}
