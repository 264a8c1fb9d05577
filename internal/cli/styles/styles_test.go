package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emicon/internal/domain/build"
	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/infrastructure/config"
)

func TestNewTheme_AccentFollowsManifestColor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Manifest.ThemeColor = "#ff0000"

	theme := NewTheme(cfg)

	assert.Equal(t, "#ff0000", string(theme.Accent))
}

func TestNewTheme_InvalidColorKeepsDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Manifest.ThemeColor = "tomato"

	assert.Equal(t, DefaultDarkPalette().Accent, string(NewTheme(cfg).Accent))
	assert.Equal(t, DefaultDarkPalette().Accent, string(NewTheme(nil).Accent))
}

func TestCandidateDelegate_Render(t *testing.T) {
	theme := NewTheme(nil)
	candidates := []entity.Candidate{
		{Rank: 0, Glyph: "🥑", Label: "avocado"},
		{Rank: entity.CandidateSentinelRank, Glyph: "🫒", Label: "olive"},
	}
	l := NewCandidateList(theme, candidates, 40, 10)
	d := NewCandidateDelegate(theme)

	var first, second bytes.Buffer
	d.Render(&first, l, 0, l.Items()[0])
	d.Render(&second, l, 1, l.Items()[1])

	assert.Contains(t, first.String(), "🥑")
	assert.Contains(t, first.String(), "avocado")
	assert.Contains(t, first.String(), strings.TrimSpace(cursorSelected))
	assert.Contains(t, second.String(), "(current)")
	assert.NotContains(t, second.String(), strings.TrimSpace(cursorSelected))
}

func TestCandidateDelegate_IgnoresForeignItems(t *testing.T) {
	theme := NewTheme(nil)
	l := NewCandidateList(theme, nil, 40, 10)

	var buf bytes.Buffer
	NewCandidateDelegate(theme).Render(&buf, l, 0, nil)

	assert.Empty(t, buf.String())
}

func TestNewSearchInput_Prefilled(t *testing.T) {
	ti := NewSearchInput(NewTheme(nil), "avocado")

	assert.Equal(t, "avocado", ti.Value())
	assert.Equal(t, searchCharLimit, ti.CharLimit)
}

func TestBadges(t *testing.T) {
	theme := NewTheme(nil)

	assert.Contains(t, theme.StateBadge(entity.ExportReady), "ready")
	assert.Contains(t, theme.StateBadge(entity.ExportIdle), "idle")
	assert.Contains(t, theme.CeilingBadge(entity.Unbounded()), "all versions")
	assert.Contains(t, theme.CeilingBadge(entity.NewVersionCeiling(13)), "13")
	assert.Contains(t, theme.VersionBadge(12.1), "E12.1")
}

func TestAboutRenderer_Render(t *testing.T) {
	out := NewAboutRenderer(NewTheme(nil)).Render(build.Info{Version: "v1.2.3", Commit: "abc123"})

	require.NotEmpty(t, out)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}
