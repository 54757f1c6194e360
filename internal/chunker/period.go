package chunker

import (
	"regexp"
	"strings"
)

// PeriodSplit is one labeled segment of a paragraph.
type PeriodSplit struct {
	Period  string // normalized trimester label, or General
	Content string // trimmed text up to the next marker; may be empty
}

// periodMarker matches inline trimester marks in any of the spellings the
// source documents use: "1.º trimestre", "2º trimestre", "3o trimestre",
// "1 trimestre". The trailing whitespace belongs to the marker.
var periodMarker = regexp.MustCompile(`(?i)(\d)\.?[°ºo]?\s*trimestre\s*`)

// SplitByPeriods splits text at inline trimester markers into labeled
// segments in document order. Text before the first marker keeps the General
// label; each marker opens a segment labeled "<digit>.º trimestre" running
// until the next marker or end of text. Without markers the whole text comes
// back as a single General segment.
func SplitByPeriods(text string) []PeriodSplit {
	marks := periodMarker.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		return []PeriodSplit{{Period: General, Content: strings.TrimSpace(text)}}
	}

	var parts []PeriodSplit
	if pre := strings.TrimSpace(text[:marks[0][0]]); pre != "" {
		parts = append(parts, PeriodSplit{Period: General, Content: pre})
	}

	for i, m := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		parts = append(parts, PeriodSplit{
			Period:  text[m[2]:m[3]] + ".º trimestre",
			Content: strings.TrimSpace(text[m[1]:end]),
		})
	}
	return parts
}
