package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkwatch/internal/domain/build"
)

// halfMoon is printed next to the build info.
const halfMoon = `  ▄███▄
 ███▀
 ███
 ███▄
  ▀███▀`

// AboutRenderer renders `darkwatch version`.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer returns a renderer using theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render lays the logo out left of one line per build field.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(halfMoon)

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.fields(info))
}

func (r *AboutRenderer) fields(info build.Info) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)

	rows := []struct{ icon, key, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(icon.Render(row.icon) + " " + r.theme.Subtle.Render(row.key) + " " + r.theme.Highlight.Render(row.value) + "\n")
	}
	sb.WriteString("\n" + icon.Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()))
	return sb.String()
}
