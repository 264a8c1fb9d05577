// Package raster draws emoji glyphs onto the export source surface.
package raster

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/logging"
)

const (
	// At 72 DPI one point is one pixel, so FaceOptions.Size is FontSize px.
	faceDPI = 72

	builtinFontSource = "builtin:goregular"
)

// Options configures font resolution.
type Options struct {
	// VectorFontPath pins the vector emoji font file.
	VectorFontPath string
	// VectorChain lists emoji families to try through the detector.
	VectorChain []string
	// FallbackFontPath pins the sans-serif font file.
	FallbackFontPath string
	// SansChain lists sans-serif families to try through the detector.
	SansChain []string
}

type loadedFont struct {
	font   *opentype.Font
	source string
}

// Rasterizer implements port.Rasterizer with golang.org/x/image/font.
// Fonts are loaded lazily, once per family.
type Rasterizer struct {
	opts     Options
	detector port.FontDetector
	cache    port.Cache[entity.RenderRequest, image.Image]

	mu    sync.Mutex
	fonts map[entity.FontFamily]*loadedFont
}

// New creates a rasterizer. detector may be nil, in which case only pinned
// paths and the builtin Go font are used.
func New(opts Options, detector port.FontDetector, cache port.Cache[entity.RenderRequest, image.Image]) *Rasterizer {
	return &Rasterizer{
		opts:     opts,
		detector: detector,
		cache:    cache,
		fonts:    make(map[entity.FontFamily]*loadedFont),
	}
}

// Rasterize draws req.Glyph black on a transparent DrawSize square, centered
// horizontally by advance width with the pen at Baseline.
func (r *Rasterizer) Rasterize(ctx context.Context, req entity.RenderRequest) (image.Image, error) {
	glyph := normalizeGlyph(req.Glyph)
	if glyph == "" {
		return nil, entity.ErrEmptyGlyph
	}
	req.Glyph = glyph

	if r.cache != nil {
		if img, ok := r.cache.Get(req); ok {
			return img, nil
		}
	}

	lf, err := r.font(ctx, req.Family)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(lf.font, &opentype.FaceOptions{
		Size:    entity.FontSize,
		DPI:     faceDPI,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer func() { _ = face.Close() }()

	dst := image.NewRGBA(image.Rect(0, 0, entity.DrawSize, entity.DrawSize))
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: face}
	advance := d.MeasureString(glyph)
	d.Dot = fixed.Point26_6{
		X: fixed.I(entity.DrawSize/2) - advance/2,
		Y: fixed.I(entity.Baseline),
	}
	d.DrawString(glyph)

	if missing := missingRunes(lf.font, glyph); len(missing) > 0 {
		logging.FromContext(ctx).Warn().
			Str("font", lf.source).
			Str("family", req.Family.String()).
			Strs("runes", missing).
			Msg("font has no glyph for some runes")
	}

	if r.cache != nil {
		r.cache.Set(req, dst)
	}
	return dst, nil
}

// FontSource reports which font file serves family.
func (r *Rasterizer) FontSource(ctx context.Context, family entity.FontFamily) (string, error) {
	lf, err := r.font(ctx, family)
	if err != nil {
		return "", err
	}
	return lf.source, nil
}

func (r *Rasterizer) font(ctx context.Context, family entity.FontFamily) (*loadedFont, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lf, ok := r.fonts[family]; ok {
		return lf, nil
	}

	var (
		lf  *loadedFont
		err error
	)
	switch family {
	case entity.FontFamilyVector:
		lf, err = r.loadVector(ctx)
	default:
		lf, err = r.loadSans(ctx)
	}
	if err != nil {
		return nil, err
	}

	r.fonts[family] = lf
	logging.FromContext(ctx).Debug().Str("family", family.String()).Str("font", lf.source).Msg("font loaded")
	return lf, nil
}

// loadVector must be called with r.mu held.
func (r *Rasterizer) loadVector(ctx context.Context) (*loadedFont, error) {
	path := r.opts.VectorFontPath
	if path == "" {
		path = r.detect(ctx, port.FontCategoryEmoji, r.opts.VectorChain)
	}
	if path == "" {
		logging.FromContext(ctx).Warn().Msg("no vector emoji font installed, drawing with sans-serif")
		if lf, ok := r.fonts[entity.FontFamilySansSerif]; ok {
			return lf, nil
		}
		return r.loadSans(ctx)
	}
	return loadFile(path)
}

// loadSans must be called with r.mu held.
func (r *Rasterizer) loadSans(ctx context.Context) (*loadedFont, error) {
	path := r.opts.FallbackFontPath
	if path == "" {
		path = r.detect(ctx, port.FontCategorySansSerif, r.opts.SansChain)
	}
	if path == "" {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse builtin font: %w", err)
		}
		return &loadedFont{font: f, source: builtinFontSource}, nil
	}
	return loadFile(path)
}

func (r *Rasterizer) detect(ctx context.Context, category port.FontCategory, chain []string) string {
	if r.detector == nil || len(chain) == 0 || !r.detector.IsAvailable(ctx) {
		return ""
	}
	return r.detector.SelectBestFont(ctx, category, chain)
}

func loadFile(path string) (*loadedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	var f *opentype.Font
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, cerr)
		}
		f, err = coll.Font(0)
	default:
		f, err = opentype.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &loadedFont{font: f, source: path}, nil
}

// normalizeGlyph drops presentation selectors that outline fonts lack.
func normalizeGlyph(glyph string) string {
	return strings.Map(func(r rune) rune {
		if r == '\uFE0E' || r == '\uFE0F' {
			return -1
		}
		return r
	}, strings.TrimSpace(glyph))
}

func missingRunes(f *opentype.Font, glyph string) []string {
	var missing []string
	for _, r := range glyph {
		if r == '\u200D' {
			continue
		}
		idx, err := f.GlyphIndex(nil, r)
		if err != nil || idx == 0 {
			missing = append(missing, fmt.Sprintf("U+%04X", r))
		}
	}
	return missing
}

var _ port.Rasterizer = (*Rasterizer)(nil)
