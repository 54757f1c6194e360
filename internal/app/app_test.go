package app

import (
	"path/filepath"
	"testing"
	"time"

	"saberes_rag/internal/chunker"
	"saberes_rag/internal/config"
	"saberes_rag/internal/index"
)

func TestSortRecordsByID(t *testing.T) {
	records := []index.Record{
		{ID: "chunk-10"},
		{ID: "chunk-2"},
		{ID: "chunk-0"},
	}
	sortRecordsByID(records)

	want := []string{"chunk-0", "chunk-2", "chunk-10"}
	for i, w := range want {
		if records[i].ID != w {
			t.Errorf("record %d: got %q, want %q", i, records[i].ID, w)
		}
	}
}

func TestSectionNames(t *testing.T) {
	chunks := []chunker.Chunk{
		{Section: "Matemáticas"},
		{Section: "Historia"},
		{Section: "Matemáticas"},
		{Section: "General"},
	}
	got := sectionNames(chunks)

	want := []string{"General", "Historia", "Matemáticas"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPreview(t *testing.T) {
	if got := preview("corto", 10); got != "corto" {
		t.Errorf("short text modified: %q", got)
	}
	got := preview("ááááá", 3)
	if got != "ááá..." {
		t.Errorf("rune-safe truncation failed: %q", got)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	cfg := &config.Config{
		ManifestFile: filepath.Join(t.TempDir(), "manifest.json"),
	}
	a := New(cfg)

	in := &Manifest{
		Source:     "Saberes_2ESO.pdf",
		Pages:      12,
		Chunks:     87,
		Dropped:    3,
		Sections:   []string{"Historia", "Matemáticas"},
		IngestedAt: time.Now().UTC(),
	}
	if err := a.saveManifest(in); err != nil {
		t.Fatalf("saveManifest: %v", err)
	}

	out, err := a.loadManifest()
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if out.Chunks != in.Chunks || out.Dropped != in.Dropped || out.Source != in.Source {
		t.Errorf("manifest mismatch: %+v vs %+v", out, in)
	}
}
