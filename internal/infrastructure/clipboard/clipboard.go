// Package clipboard copies text through wl-clipboard (Wayland) or xclip/xsel (X11).
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/emicon/internal/application/port"
	"github.com/bnema/emicon/internal/logging"
)

// ErrNoTool is returned when no clipboard tool was found.
var ErrNoTool = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

type tool struct {
	name    string
	args    []string
	display string
}

// tools are tried in order; display names the env var the tool needs.
var tools = []tool{
	{name: "wl-copy", display: "WAYLAND_DISPLAY"},
	{name: "xclip", args: []string{"-selection", "clipboard"}, display: "DISPLAY"},
	{name: "xsel", args: []string{"--clipboard", "--input"}, display: "DISPLAY"},
}

// Env abstracts the process environment for tool selection.
type Env struct {
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

// Adapter implements port.Clipboard with an external tool.
type Adapter struct {
	path string
	args []string
}

// New selects a clipboard tool from the current environment.
func New() *Adapter {
	return NewWithEnv(Env{Getenv: os.Getenv, LookPath: exec.LookPath})
}

// NewWithEnv selects a clipboard tool using env.
func NewWithEnv(env Env) *Adapter {
	for _, t := range tools {
		if env.Getenv(t.display) == "" {
			continue
		}
		if path, err := env.LookPath(t.name); err == nil {
			return &Adapter{path: path, args: t.args}
		}
	}
	return &Adapter{}
}

// Available reports whether a tool was found.
func (a *Adapter) Available() bool {
	return a.path != ""
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.path == "" {
		log.Error().Err(ErrNoTool).Msg("clipboard write failed")
		return ErrNoTool
	}

	cmd := exec.CommandContext(ctx, a.path, a.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", a.path).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write: %w", err)
	}

	log.Debug().Str("tool", a.path).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

var _ port.Clipboard = (*Adapter)(nil)
