package extract

import (
	"strings"
	"testing"
)

func TestMarkdown_HeadingsAndParagraphs(t *testing.T) {
	src := []byte("# Matemáticas\n\nNúmeros enteros\ny fracciones.\n\nGeometría plana.\n")
	pages := Markdown(src)

	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0].Page != 1 {
		t.Errorf("expected page 1, got %d", pages[0].Page)
	}

	lines := strings.Split(pages[0].Text, "\n")
	if lines[0] != "Matemáticas" {
		t.Errorf("expected heading as first line, got %q", lines[0])
	}
	// Soft line breaks inside a paragraph collapse into one line.
	if !strings.Contains(pages[0].Text, "Números enteros y fracciones.") {
		t.Errorf("paragraph not joined: %q", pages[0].Text)
	}
	// Paragraphs stay separated by a blank line.
	if !strings.Contains(pages[0].Text, ".\n\nGeometría plana.") {
		t.Errorf("paragraphs not separated: %q", pages[0].Text)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	if pages := Markdown([]byte("   \n")); pages != nil {
		t.Errorf("expected nil for blank input, got %+v", pages)
	}
}
