package port

import "context"

// FontCategory represents a category of fonts for fallback selection.
type FontCategory string

const (
	// FontCategoryEmoji is for emoji fonts used in vector mode.
	FontCategoryEmoji FontCategory = "emoji"
	// FontCategorySansSerif is for the generic sans-serif fallback.
	FontCategorySansSerif FontCategory = "sans-serif"
)

// FontDetector resolves installed font families to font files.
type FontDetector interface {
	// IsAvailable returns true if font lookup works on this system
	// (e.g. fontconfig's fc-match is installed).
	IsAvailable(ctx context.Context) bool

	// Locate returns the file path of the font that best matches family.
	Locate(ctx context.Context, family string) (string, error)

	// SelectBestFont returns the path of the first family in fallbackChain
	// that resolves to an installed font, or "" if none does.
	SelectBestFont(ctx context.Context, category FontCategory, fallbackChain []string) string
}
