package index

// Metadata keys stored with every vector, in both engines.
const (
	MetaText    = "text"
	MetaPage    = "page"
	MetaSection = "section"
	MetaPeriod  = "period"
)

// Record is one embedded chunk bound for an index.
type Record struct {
	ID       string
	Values   []float32
	Metadata map[string]string
}

// Result is one similarity-search match.
type Result struct {
	ID       string
	Score    float32
	Metadata map[string]string
}

// PeriodOf reads the period from vector metadata. Vectors stored before
// period tracking existed have no period key; they default to General.
func PeriodOf(meta map[string]string) string {
	if p := meta[MetaPeriod]; p != "" {
		return p
	}
	return "General"
}
