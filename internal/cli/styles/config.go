package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/darkwatch/internal/infrastructure/config"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.SuccessStyle.Render(IconCheck + " exists")
	if !exists {
		status = r.theme.WarningStyle.Render(IconWarning + " not created yet")
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderCreated renders the message after writing a config file.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
	)
}

// RenderExists renders the refusal to overwrite an existing file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Use --force to overwrite it with defaults."),
	)
}

// RenderMissingKeys renders the settings a config file does not set yet.
func (r *ConfigRenderer) RenderMissingKeys(path string, keys []config.KeyInfo) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight
	typeStyle := r.theme.Subtle
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	fmt.Fprintf(&sb, "\n  Missing settings (%d):\n", len(keys))

	for _, key := range keys {
		fmt.Fprintf(&sb,
			"    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(IconArrow),
			keyStyle.Render(key.Key),
			typeStyle.Render(key.Type),
			valueStyle.Render(key.DefaultValue),
		)
	}

	return sb.String()
}

// RenderMigrateHint renders a hint to run the migrate command.
func (r *ConfigRenderer) RenderMigrateHint(missing int) string {
	return fmt.Sprintf(
		"  %s\n",
		r.theme.Subtle.Render(fmt.Sprintf("%d new settings available. Run 'darkwatch config migrate' to add them.", missing)),
	)
}

// RenderMigrated renders the success message after a migration.
func (r *ConfigRenderer) RenderMigrated(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Added %s new settings to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
