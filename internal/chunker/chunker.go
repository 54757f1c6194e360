package chunker

import "strings"

// Chunker is the multi-level segmentation engine. Headings open sections,
// inline trimester marks open periods, paragraphs accumulate greedily up to
// MaxChunkChars, and oversized paragraphs fall back to sentence splitting.
// Section and period state carries across pages, so pages must be fed in
// increasing page order. A Chunker holds the state of one run and is not
// safe for concurrent use; independent runs need independent Chunkers.
type Chunker struct {
	cfg Config

	section string
	period  string
	pending string // accumulated paragraphs waiting to become a chunk
	page    int    // page where the pending buffer last took content

	chunks  []Chunk
	dropped int
}

func New(cfg Config) *Chunker {
	return &Chunker{cfg: cfg}
}

// Split consumes pages line by line and returns the finished chunks in
// document order. It always terminates: every branch (oversized paragraph,
// oversized sentence, empty input) has a defined fallback.
func (c *Chunker) Split(pages []PageText) []Chunk {
	c.reset()

	for _, pg := range pages {
		paragraph := ""
		for _, line := range strings.Split(pg.Text, "\n") {
			line = strings.TrimSpace(line)

			switch {
			case line == "":
				// Blank line ends the paragraph.
				if paragraph != "" {
					c.processParagraph(paragraph, pg.Page)
					paragraph = ""
					c.page = pg.Page
				}

			case IsHeading(line):
				// Close out everything belonging to the old section before
				// switching; the pending buffer must never mix sections.
				if paragraph != "" {
					c.processParagraph(paragraph, pg.Page)
					paragraph = ""
				}
				c.flush(c.pending, c.page)
				c.pending = ""
				c.section = line
				c.period = General
				c.page = pg.Page

			default:
				paragraph = strings.TrimSpace(paragraph + " " + line)
			}
		}

		// End of page: force the remaining paragraph through, even without
		// a trailing blank line.
		if paragraph != "" {
			c.processParagraph(paragraph, pg.Page)
			c.page = pg.Page
		}
	}

	c.flush(c.pending, c.page)
	c.pending = ""
	return c.chunks
}

// Dropped reports how many non-empty fragments the minimum-size filter
// discarded during the last run.
func (c *Chunker) Dropped() int {
	return c.dropped
}

func (c *Chunker) reset() {
	c.section = General
	c.period = General
	c.pending = ""
	c.page = 1
	c.chunks = nil
	c.dropped = 0
}

// processParagraph routes one completed paragraph. Paragraphs without period
// marks accumulate into the pending buffer; paragraphs with marks force an
// immediate flush so content from two periods never merges into one chunk.
func (c *Chunker) processParagraph(paragraph string, page int) {
	parts := SplitByPeriods(paragraph)

	if len(parts) == 1 && parts[0].Period == General {
		text := parts[0].Content
		// Inclusive boundary: a paragraph that exactly fills the remaining
		// budget (counting the blank-line joiner) still appends.
		if charLen(c.pending)+charLen(text)+2 <= c.cfg.MaxChunkChars {
			c.pending = strings.TrimSpace(c.pending + "\n\n" + text)
			return
		}
		c.flush(c.pending, page)
		if charLen(text) > c.cfg.MaxChunkChars {
			for _, frag := range SplitBySentences(text, c.cfg.MaxChunkChars) {
				c.flush(frag, page)
			}
			c.pending = ""
		} else {
			c.pending = text
		}
		return
	}

	c.flush(c.pending, page)
	c.pending = ""

	for _, part := range parts {
		if part.Period != General {
			c.period = part.Period
		}
		if part.Content == "" {
			continue
		}
		if charLen(part.Content) > c.cfg.MaxChunkChars {
			for _, frag := range SplitBySentences(part.Content, c.cfg.MaxChunkChars) {
				c.flush(frag, page)
			}
		} else {
			c.flush(part.Content, page)
		}
	}
}

// flush finalizes text into a Chunk, discarding noise shorter than
// MinChunkChars. The section and period context is prefixed to the stored
// text so the embedding carries it; General adds no prefix, but the
// structured fields are always populated.
func (c *Chunker) flush(text string, page int) {
	text = strings.TrimSpace(text)
	if charLen(text) < c.cfg.MinChunkChars {
		if text != "" {
			c.dropped++
		}
		return
	}

	prefix := ""
	if c.section != General {
		prefix = "[" + c.section + "]"
	}
	if c.period != General {
		if prefix != "" {
			prefix += " [" + c.period + "]"
		} else {
			prefix = "[" + c.period + "]"
		}
	}
	if prefix != "" {
		text = prefix + " " + text
	}

	c.chunks = append(c.chunks, Chunk{
		Text:    text,
		Section: c.section,
		Period:  c.period,
		Page:    page,
	})
}
