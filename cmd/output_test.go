package cmd

import (
	"testing"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"fits", "Array", 10, "Array"},
		{"exact", "Array", 5, "Array"},
		{"cut", "Dynamic Programming", 8, "Dynamic…"},
		{"multibyte", "Ünïcödé Tópic", 5, "Ünïc…"},
		{"wide runes", "二分探索木", 5, "二分…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, lipgloss.Width(got), tt.n)
		})
	}
}

func TestTruncate_TinyWidth(t *testing.T) {
	for n := 0; n < 3; n++ {
		got := truncate("Hash Table", n)
		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, lipgloss.Width(got), n)
	}
}

func TestPadUsesDisplayWidth(t *testing.T) {
	assert.Equal(t, 8, lipgloss.Width(pad("Ünïcödé", 8)))
	assert.Equal(t, 6, lipgloss.Width(pad("二分", 6)))
	assert.Equal(t, "too long", pad("too long", 3))
}
