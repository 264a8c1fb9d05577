package logging

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithFile_WritesToRotatingFile(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.DebugLevel, Format: "console"},
		FileConfig{Enabled: true, Dir: dir},
	)
	require.NoError(t, err)

	logger.Info().Str("glyph", "🥑").Msg("export finished")
	cleanup()

	data, err := os.ReadFile(LogFilePath(dir))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"message":"export finished"`))
	assert.True(t, strings.Contains(string(data), `"glyph":"🥑"`))
}

func TestNewWithFile_DisabledIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()

	r, err := NewLogRotator(RotatorOptions{Dir: dir, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "current file plus one rotated backup")
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf strings.Builder
	base := zerolog.New(&buf)
	ctx := WithComponent(WithContext(context.Background(), base), "exporter")

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"exporter"`)
}
