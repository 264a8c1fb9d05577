// Package validation holds field checks shared by config and CLI input.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is a CSS hex color (#RGB or #RRGGBB).
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHexColor returns a message when value is not a hex color.
func ValidateHexColor(field, value string) []string {
	if IsHexColor(value) {
		return nil
	}
	return []string{field + " must be a hex color like #RRGGBB"}
}
