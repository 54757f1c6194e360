package chunker

import (
	"reflect"
	"testing"
)

func TestSplitByPeriods(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []PeriodSplit
	}{
		{
			name: "no markers",
			text: "  Texto corriente sin marcas.  ",
			want: []PeriodSplit{{Period: General, Content: "Texto corriente sin marcas."}},
		},
		{
			name: "prefix then two markers",
			text: "Introducción general. 1.º trimestre Números enteros. 2º trimestre Álgebra.",
			want: []PeriodSplit{
				{Period: General, Content: "Introducción general."},
				{Period: "1.º trimestre", Content: "Números enteros."},
				{Period: "2.º trimestre", Content: "Álgebra."},
			},
		},
		{
			name: "marker spelling variants normalize",
			text: "3o trimestre Geometría",
			want: []PeriodSplit{{Period: "3.º trimestre", Content: "Geometría"}},
		},
		{
			name: "bare digit marker",
			text: "1 trimestre Lectura",
			want: []PeriodSplit{{Period: "1.º trimestre", Content: "Lectura"}},
		},
		{
			name: "uppercase marker",
			text: "2.º TRIMESTRE Redacción",
			want: []PeriodSplit{{Period: "2.º trimestre", Content: "Redacción"}},
		},
		{
			name: "marker with empty content kept",
			text: "2.º trimestre",
			want: []PeriodSplit{{Period: "2.º trimestre", Content: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitByPeriods(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitByPeriods(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
