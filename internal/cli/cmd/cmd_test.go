package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emicon/internal/cli/styles"
	"github.com/bnema/emicon/internal/domain/entity"
)

func candidates() []entity.Candidate {
	return []entity.Candidate{
		{Rank: 0, Glyph: "🥑", Label: "avocado"},
		{Rank: 8, Glyph: "🫠", Label: "melting face"},
		{Rank: 9, Glyph: "😀", Label: "grinning face"},
	}
}

func TestWriteCandidatesJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeCandidatesJSON(&buf, candidates(), 2))

	var got []candidateJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []candidateJSON{
		{Rank: 0, Glyph: "🥑", Label: "avocado"},
		{Rank: 8, Glyph: "🫠", Label: "melting face"},
	}, got)
}

func TestWriteCandidatesJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeCandidatesJSON(&buf, nil, 0))

	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteCandidates(t *testing.T) {
	theme := styles.NewTheme(nil)

	var buf bytes.Buffer
	writeCandidates(&buf, theme, candidates(), 0)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "avocado")
	assert.Contains(t, lines[2], "@9")

	buf.Reset()
	writeCandidates(&buf, theme, nil, 0)
	assert.Contains(t, buf.String(), "no matches")
}

func TestTailLines(t *testing.T) {
	in := "one\ntwo\nthree\nfour\n"

	got, err := tailLines(strings.NewReader(in), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, got)

	got, err = tailLines(strings.NewReader(in), 0)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestDocsOutputDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	dir, err := docsOutputDir("man", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "man", "man1"), dir)

	dir, err = docsOutputDir("markdown", "")
	require.NoError(t, err)
	assert.Equal(t, "./docs", dir)

	dir, err = docsOutputDir("man", "./out")
	require.NoError(t, err)
	assert.Equal(t, "./out", dir)

	_, err = docsOutputDir("pdf", "")
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "13", firstNonEmpty("", "13", "14"))
	assert.Empty(t, firstNonEmpty("", ""))
}

func TestIsInteractive(t *testing.T) {
	assert.True(t, isInteractive(rootCmd))
	assert.True(t, isInteractive(tuiCmd))
	assert.False(t, isInteractive(searchCmd))
	assert.False(t, isInteractive(emojiVersionCmd))
}

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestRun_ClosesAppWhenCommandFails(t *testing.T) {
	isolateXDG(t)

	err := run([]string{"settings", "emoji-version", "NaN"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
	assert.Nil(t, GetApp())
}

func TestRun_ClosesAppAfterSuccess(t *testing.T) {
	root := isolateXDG(t)

	require.NoError(t, run([]string{"settings", "emoji-version", "12"}))
	assert.Nil(t, GetApp())

	// The database was released, so a second run can open it again.
	require.NoError(t, run([]string{"settings", "emoji-version"}))
	assert.Nil(t, GetApp())

	_, statErr := os.Stat(filepath.Join(root, "config", "emicon", "config.toml"))
	assert.NoError(t, statErr)
}
