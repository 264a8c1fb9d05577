package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/emicon/internal/domain/build"
)

// AboutRenderer renders build info in fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `███████
██
█████
██
███████`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	lines := []string{
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		line(IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")),
	}

	return strings.Join(lines, "\n")
}
