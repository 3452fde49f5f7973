package hasher

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestContentHash_Length(t *testing.T) {
	data := []byte("codec fixture")
	if got := ContentHash(data, 0); len(got) != 16 {
		t.Errorf("full hash length: got %d", len(got))
	}
	if got := ContentHash(data, 8); len(got) != 8 {
		t.Errorf("truncated hash length: got %d", len(got))
	}
}

func TestContentHash_KnownValue(t *testing.T) {
	// xxHash64 of the empty input with seed 0.
	if got := ContentHash(nil, 0); got != "ef46db3751d8e999" {
		t.Errorf("empty hash: got %s", got)
	}
}

func TestFileHash_MatchesReader(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 4096)
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FileHash(path, 16)
	if err != nil {
		t.Fatalf("file hash: %v", err)
	}
	want, _ := ContentHashReader(bytes.NewReader(data), 16)
	if got != want || got != ContentHash(data, 16) {
		t.Errorf("hash mismatch: file=%s reader=%s", got, want)
	}
}

func TestFileHash_Missing(t *testing.T) {
	if _, err := FileHash(filepath.Join(t.TempDir(), "missing"), 16); err == nil {
		t.Error("expected error for missing file")
	}
}
