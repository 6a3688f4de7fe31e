package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
		ok    bool
	}{
		{"named", "red", "#ff0000", true},
		{"named uppercase", "RED", "#ff0000", true},
		{"named padded", "  yellow  ", "#ffff00", true},
		{"transparent", "transparent", "#00000000", true},
		{"short hex", "#abc", "#aabbcc", true},
		{"short hex with alpha", "#abcf", "#aabbcc", true},
		{"long hex", "#AABBCC", "#aabbcc", true},
		{"long hex with alpha", "#aabbcc80", "#aabbcc80", true},
		{"rgb commas", "rgb(255, 0, 0)", "#ff0000", true},
		{"rgb spaces", "rgb(255 128 0)", "#ff8000", true},
		{"rgb percentages", "rgb(100%, 0%, 0%)", "#ff0000", true},
		{"rgba", "rgba(0, 0, 0, 0.5)", "#00000080", true},
		{"rgb clamps", "rgb(300, -4, 0)", "#ff0000", true},
		{"empty", "", "", false},
		{"unknown name", "bleen", "", false},
		{"bad hex length", "#abcde", "", false},
		{"bad hex digits", "#xyzxyz", "", false},
		{"bad rgb", "rgb(red, green, blue)", "", false},
		{"unbalanced rgb", "rgb(1, 2", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
