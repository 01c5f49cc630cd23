package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"#3B82F6", 10, "#3B82F6"},
		{"Bioluminescence", 6, "Biolu…"},
		{"anything", 0, ""},
		{"深海", 3, "深…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateString(tt.in, tt.width), tt.in)
	}
}

func TestPadAndCenter(t *testing.T) {
	assert.Equal(t, "500  ", PadRight("500", 5))
	assert.Equal(t, " 50  ", Center("50", 5))
	assert.Equal(t, "abc", Center("abcdef", 3))
}
