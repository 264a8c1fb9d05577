package entity

import "fmt"

// Rasterization constants for the source surface.
const (
	// DrawSize is the edge length of the square source surface.
	DrawSize = 512
	// FontSize is the glyph size in pixels on the source surface.
	FontSize = DrawSize * 400 / 512
	// Baseline is the vertical pen position tuned to center emoji glyphs.
	Baseline = FontSize - 10
)

// ArchiveFileName is the name the archive is offered under.
const ArchiveFileName = "icons.zip"

// iconSizes lists every exported edge length, in archive order.
var iconSizes = []int{16, 32, 48, 72, 96, 120, 128, 144, 152, 180, 192, 384, 512}

// IconSizes returns a copy of the fixed export sizes in archive order.
func IconSizes() []int {
	sizes := make([]int, len(iconSizes))
	copy(sizes, iconSizes)
	return sizes
}

// IconFileName returns the archive entry name for a size, e.g. icon-16x16.png.
func IconFileName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// FontFamily selects the font used to draw the glyph.
type FontFamily int

const (
	// FontFamilyVector uses the configured emoji font.
	FontFamilyVector FontFamily = iota
	// FontFamilySansSerif uses a generic sans-serif fallback.
	FontFamilySansSerif
)

// FontFamilyFromToggle maps the "vector fonts" toggle to a family.
func FontFamilyFromToggle(vector bool) FontFamily {
	if vector {
		return FontFamilyVector
	}
	return FontFamilySansSerif
}

// String implements fmt.Stringer.
func (f FontFamily) String() string {
	switch f {
	case FontFamilyVector:
		return "vector"
	case FontFamilySansSerif:
		return "sans-serif"
	default:
		return fmt.Sprintf("FontFamily(%d)", int(f))
	}
}

// RenderRequest describes what the rasterizer should draw.
type RenderRequest struct {
	Glyph  string
	Family FontFamily
}

// ExportedImage is one encoded PNG of the export set.
type ExportedImage struct {
	SizePx int
	Data   []byte
}

// FileName returns the archive entry name for this image.
func (e ExportedImage) FileName() string {
	return IconFileName(e.SizePx)
}

// Archive is the result of a completed export.
type Archive struct {
	// Data is the finalized zip container.
	Data []byte
	// Files lists entry names in archive order.
	Files []string
	// Fragment is the comma-joined icons array entries.
	Fragment string
	// Manifest is the full web-app manifest document embedding Fragment.
	Manifest string
	// Selection is what was drawn.
	Selection Selection
	// Family is the font family used.
	Family FontFamily
}
