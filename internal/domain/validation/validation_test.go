package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#2196f3", true},
		{"#FFF", true},
		{"2196f3", false},
		{"#2196f", false},
		{"#gggggg", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHexColor(tt.value))
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	assert.Nil(t, ValidateHexColor("manifest.theme_color", "#2196f3"))
	assert.Equal(t,
		[]string{"manifest.theme_color must be a hex color like #RRGGBB"},
		ValidateHexColor("manifest.theme_color", "blue"))
}

func TestValidateFontFamily(t *testing.T) {
	assert.Empty(t, ValidateFontFamily("render.vector_font", "Noto Emoji", false))
	assert.Empty(t, ValidateFontFamily("render.vector_font", "  ", true))
	assert.Equal(t, []string{"render.vector_font cannot be empty"}, ValidateFontFamily("render.vector_font", "", false))
	assert.Contains(t, ValidateFontFamily("f", "a\nb", false), "f must not contain newlines")
}

func TestParseEmojiVersion(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{raw: "12", want: 12, wantOK: true},
		{raw: " 13.1 ", want: 13.1, wantOK: true},
		{raw: "0", want: 0, wantOK: true},
		{raw: "latest"},
		{raw: ""},
		{raw: "NaN"},
		{raw: "nan"},
		{raw: "Inf"},
		{raw: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseEmojiVersion(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
