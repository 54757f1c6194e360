package chunker

import "unicode/utf8"

// General is the default section and period label, used until a heading or
// an inline period marker says otherwise.
const General = "General"

// PageText is one page of extracted document text.
type PageText struct {
	Page int    // 1-based page number
	Text string // raw extracted text, lines separated by \n
}

// Chunk is a bounded fragment of document text, the unit handed to
// embedding and indexing.
type Chunk struct {
	Text    string // chunk text, prefixed with [section] [period] context
	Section string // enclosing subject, General until a heading is seen
	Period  string // enclosing trimester, General unless marked inline
	Page    int    // page the chunk content appeared on
}

// Config bounds the chunker output.
type Config struct {
	MaxChunkChars int // target ceiling per chunk; soft for a single oversized sentence
	MinChunkChars int // fragments shorter than this are dropped as noise
}

// charLen counts characters, not bytes. Accented Spanish text makes the
// difference matter for the size bounds.
func charLen(s string) int {
	return utf8.RuneCountInString(s)
}
