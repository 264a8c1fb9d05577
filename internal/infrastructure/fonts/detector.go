// Package fonts resolves installed font families to font files through
// fontconfig.
package fonts

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/logging"
)

// ErrFontNotFound is returned when fontconfig substitutes a different family.
var ErrFontNotFound = errors.New("font not installed")

// Fallback chains for each font category (unexported to prevent modification).
var (
	// Outline emoji fonts. Color bitmap fonts such as Noto Color Emoji carry
	// no outlines and cannot be rasterized here.
	emojiFallbackChain = []string{
		"Noto Emoji",
		"Symbola",
		"OpenMoji",
		"Twemoji Mozilla",
	}

	sansSerifFallbackChain = []string{
		"Noto Sans",
		"DejaVu Sans",
		"Liberation Sans",
		"FreeSans",
	}
)

// EmojiFallbackChain returns the fallback chain for vector emoji fonts.
func EmojiFallbackChain() []string {
	return append([]string(nil), emojiFallbackChain...)
}

// SansSerifFallbackChain returns the fallback chain for sans-serif fonts.
func SansSerifFallbackChain() []string {
	return append([]string(nil), sansSerifFallbackChain...)
}

// FallbackChain returns the chain for category, led by preferred when set.
func FallbackChain(category port.FontCategory, preferred string) []string {
	var chain []string
	if preferred != "" {
		chain = append(chain, preferred)
	}
	switch category {
	case port.FontCategoryEmoji:
		chain = append(chain, emojiFallbackChain...)
	default:
		chain = append(chain, sansSerifFallbackChain...)
	}
	return chain
}

// Runner executes a command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Detector implements port.FontDetector using fontconfig's fc-match command.
type Detector struct {
	run Runner

	mu    sync.Mutex
	paths map[string]string
}

// NewDetector creates a new font detector backed by fc-match.
func NewDetector() *Detector {
	return NewDetectorWithRunner(execRunner)
}

// NewDetectorWithRunner creates a detector that shells out through run.
func NewDetectorWithRunner(run Runner) *Detector {
	return &Detector{run: run, paths: make(map[string]string)}
}

// IsAvailable implements port.FontDetector.
func (*Detector) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath("fc-match")
	return err == nil
}

// Locate implements port.FontDetector. Results are cached per family.
func (d *Detector) Locate(ctx context.Context, family string) (string, error) {
	d.mu.Lock()
	if path, ok := d.paths[family]; ok {
		d.mu.Unlock()
		return path, nil
	}
	d.mu.Unlock()

	out, err := d.run(ctx, "fc-match", "--format=%{family}\n%{file}\n", family)
	if err != nil {
		return "", fmt.Errorf("fc-match %q: %w", family, err)
	}

	matched, path, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	path = strings.TrimSpace(path)
	if path == "" || !familyMatches(matched, family) {
		return "", fmt.Errorf("%w: %s (fontconfig offered %q)", ErrFontNotFound, family, matched)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
	default:
		return "", fmt.Errorf("%w: %s resolves to unsupported file %s", ErrFontNotFound, family, path)
	}

	d.mu.Lock()
	d.paths[family] = path
	d.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("family", family).Str("path", path).Msg("font located")
	return path, nil
}

// SelectBestFont implements port.FontDetector.
func (d *Detector) SelectBestFont(ctx context.Context, category port.FontCategory, fallbackChain []string) string {
	log := logging.FromContext(ctx)

	for _, family := range fallbackChain {
		path, err := d.Locate(ctx, family)
		if err != nil {
			log.Trace().Err(err).Str("category", string(category)).Msg("font candidate skipped")
			continue
		}
		log.Debug().
			Str("category", string(category)).
			Str("font", family).
			Msg("selected font from fallback chain")
		return path
	}

	log.Debug().Str("category", string(category)).Msg("no font from fallback chain installed")
	return ""
}

// familyMatches reports whether one of fontconfig's comma-separated family
// names equals want, ignoring case.
func familyMatches(matched, want string) bool {
	for _, name := range strings.Split(matched, ",") {
		if strings.EqualFold(strings.TrimSpace(name), want) {
			return true
		}
	}
	return false
}

var _ port.FontDetector = (*Detector)(nil)
