package chunker

import (
	"strings"
	"testing"
)

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"known subject", "Matemáticas", true},
		{"subject with trailing text", "Geografía e Historia 2.º ESO", true},
		{"case insensitive", "matemáticas", true},
		{"document title", "Saberes básicos de la etapa", true},
		{"surrounding whitespace", "  Física y Química  ", true},
		{"empty line", "", false},
		{"whitespace only", "   ", false},
		{"trimester mark is content", "1.º trimestre", false},
		{"unknown wording", "Contenidos transversales", false},
		{"subject mentioned mid-line", "Los saberes de Matemáticas", false},
		{"too long", "Matemáticas " + strings.Repeat("y más matemáticas ", 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeading(tt.line); got != tt.want {
				t.Errorf("IsHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
