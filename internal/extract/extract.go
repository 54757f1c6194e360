package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"saberes_rag/internal/chunker"
)

// FromFile picks an extractor by file extension. PDFs keep their page
// structure; markdown and plain text come back as a single synthetic page.
func FromFile(path string) ([]chunker.PageText, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDF(path)
	case ".md", ".markdown":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return Markdown(content), nil
	case ".txt", ".text":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return nil, nil
		}
		return []chunker.PageText{{Page: 1, Text: string(content)}}, nil
	default:
		return nil, fmt.Errorf("unsupported document format: %s", filepath.Ext(path))
	}
}
