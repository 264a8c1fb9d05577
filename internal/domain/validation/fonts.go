package validation

import "strings"

const maxFontFamilyLen = 200

// ValidateFontFamily checks a fontconfig family name. Empty values are
// allowed when optional is set.
func ValidateFontFamily(field, value string, optional bool) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		if optional {
			return nil
		}
		return []string{field + " cannot be empty"}
	}

	var errs []string
	if strings.ContainsAny(value, "\r\n") {
		errs = append(errs, field+" must not contain newlines")
	}
	if len(value) > maxFontFamilyLen {
		errs = append(errs, field+" is too long")
	}
	return errs
}
