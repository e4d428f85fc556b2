package ingest

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/cogniquest/cogniquest/internal/quiz"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFromPrompt(t *testing.T) {
	m, err := FromPrompt("  Explain the Krebs cycle.  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != quiz.MaterialText {
		t.Errorf("kind = %q, want text", m.Kind)
	}
	if m.Content != "Explain the Krebs cycle." {
		t.Errorf("content = %q, want trimmed prompt", m.Content)
	}
}

func TestFromPrompt_EmptyRejected(t *testing.T) {
	if _, err := FromPrompt("   \n\t "); err == nil {
		t.Fatal("expected error for whitespace-only prompt")
	}
}

func TestFromFile_Text(t *testing.T) {
	path := writeFile(t, "notes.md", []byte("# Photosynthesis\nLight reactions.\n"))

	m, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != quiz.MaterialText {
		t.Errorf("kind = %q, want text", m.Kind)
	}
	if m.FileName != "notes.md" {
		t.Errorf("file name = %q, want notes.md", m.FileName)
	}
	if m.Content != "# Photosynthesis\nLight reactions." {
		t.Errorf("content = %q", m.Content)
	}
}

func TestFromFile_Image(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	path := writeFile(t, "diagram.PNG", raw)

	m, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Kind != quiz.MaterialImage {
		t.Errorf("kind = %q, want image", m.Kind)
	}
	if m.MIME != "image/png" {
		t.Errorf("mime = %q, want image/png", m.MIME)
	}
	decoded, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		t.Fatalf("data is not base64: %v", err)
	}
	if string(decoded) != string(raw) {
		t.Error("decoded data does not round-trip")
	}
}

func TestFromFile_EmptyTextRejected(t *testing.T) {
	path := writeFile(t, "empty.txt", []byte("   \n"))
	if _, err := FromFile(path); err == nil {
		t.Fatal("expected error for empty text file")
	}
}

func TestFromFile_BinaryRejected(t *testing.T) {
	path := writeFile(t, "blob.bin", []byte{0xFF, 0xFE, 0x00, 0x01, 0x80})
	if _, err := FromFile(path); err == nil {
		t.Fatal("expected error for non-UTF-8 file without image extension")
	}
}

func TestFromFile_Missing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFromFiles_EmptyListRejected(t *testing.T) {
	if _, err := FromFiles(nil); err == nil {
		t.Fatal("expected error for empty file list")
	}
}

func TestFromFiles_MixedKinds(t *testing.T) {
	text := writeFile(t, "a.txt", []byte("alpha"))
	img := writeFile(t, "b.jpg", []byte{0xFF, 0xD8, 0xFF})

	materials, err := FromFiles([]string{text, img})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("len = %d, want 2", len(materials))
	}
	if materials[0].Kind != quiz.MaterialText || materials[1].Kind != quiz.MaterialImage {
		t.Errorf("kinds = %q, %q", materials[0].Kind, materials[1].Kind)
	}
}
