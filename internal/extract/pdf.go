package extract

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"saberes_rag/internal/chunker"
)

// PDF extracts per-page text from a PDF file, skipping pages whose extracted
// text is empty or whitespace-only. Page numbers are 1-based.
func PDF(path string) ([]chunker.PageText, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []chunker.PageText
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, chunker.PageText{Page: i, Text: text})
	}
	return pages, nil
}
