package chunker

import (
	"regexp"
	"strings"
)

// headingPatterns is the closed allow-list of section headings: the known
// subject names of the curriculum plus the document title. This is a
// deliberate allow-list, not a layout heuristic, so headings worded outside
// this vocabulary are treated as ordinary content. Trimester marks like
// "1.º trimestre" are content inside a section, never headings.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(Lengua Castellana|Matemáticas|Ciencias Naturales|Ciencias Sociales|` +
		`Historia|Geografía e Historia|Biología|Física y Química|` +
		`Inglés|Francés|Segunda Lengua|Educación Física|Tecnología|` +
		`Música|Plástica|Artes Plásticas|Religión|Ética|Filosofía|` +
		`Economía|Informática|Latín|Literatura|Valores Cívicos|` +
		`Educación en Valores)`),
	regexp.MustCompile(`(?i)^Saberes básicos`),
}

// IsHeading reports whether a line starts a new section. Headings are short:
// anything over 60 characters is content.
func IsHeading(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || charLen(line) > 60 {
		return false
	}
	for _, p := range headingPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
