package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/darkwatch/internal/application/usecase"
	"github.com/bnema/darkwatch/internal/cli"
	"github.com/bnema/darkwatch/internal/cli/model"
	"github.com/bnema/darkwatch/internal/cli/styles"
	"github.com/bnema/darkwatch/internal/infrastructure/config"
	"github.com/bnema/darkwatch/internal/logging"
)

var (
	watchJSON    bool
	watchTUI     bool
	watchNoHooks bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow color scheme changes and run hooks",
	Long: `Print the current color scheme, then every change the desktop portal reports.

When the resolved mode changes, the commands listed under [hooks] for that
mode run with 'sh -c'. Each receives the mode as $1 and in DARKWATCH_MODE.
Edits to the config file are picked up without a restart.

Stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "print one JSON object per update")
	watchCmd.Flags().BoolVar(&watchTUI, "tui", false, "show an interactive view")
	watchCmd.Flags().BoolVar(&watchNoHooks, "no-hooks", false, "do not run the configured hooks")
	watchCmd.MarkFlagsMutuallyExclusive("json", "tui")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(a.Ctx(), "watch"), os.Interrupt, unix.SIGTERM)
	defer stop()

	uc := usecase.NewWatchColorSchemeUseCase(a.Portal, a.PortalDetector, a.Resolver, a.Hooks)
	followConfig(ctx, a, uc)

	input := usecase.WatchColorSchemeInput{RunHooks: !watchNoHooks}
	if watchTUI {
		return runWatchTUI(a.QuietCtx(ctx), a.Theme, uc, input)
	}

	p := newUpdatePrinter(cmd.OutOrStdout(), a.Theme, watchJSON)
	input.OnUpdate = p.update
	input.OnHooks = p.hooks
	if err := uc.Execute(ctx, input); err != nil {
		return err
	}
	return p.err
}

// followConfig reloads hook commands and re-resolves when the config file
// changes.
func followConfig(ctx context.Context, a *cli.App, uc *usecase.WatchColorSchemeUseCase) {
	log := logging.FromContext(ctx)

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		a.Hooks.SetCommands(cli.HookCommands(cfg.Hooks))
		log.Info().Str("color_scheme", cfg.Appearance.ColorScheme).Msg("config reloaded")
		uc.Reload()
	})
	if err := a.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config file will not be watched")
	}
}

// updateJSON is one line of `watch --json`.
type updateJSON struct {
	Time      time.Time `json:"time"`
	Event     string    `json:"event"`
	Mode      string    `json:"mode"`
	Source    string    `json:"source,omitempty"`
	Delivered string    `json:"delivered,omitempty"`
	Changed   bool      `json:"changed,omitempty"`
	Reload    bool      `json:"reload,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// updatePrinter writes watch updates as styled lines or JSON lines. The first
// write error is kept and later writes are skipped.
type updatePrinter struct {
	w      io.Writer
	theme  *styles.Theme
	asJSON bool
	now    func() time.Time
	err    error
}

func newUpdatePrinter(w io.Writer, theme *styles.Theme, asJSON bool) *updatePrinter {
	return &updatePrinter{w: w, theme: theme, asJSON: asJSON, now: time.Now}
}

func (p *updatePrinter) update(u usecase.ColorSchemeUpdate) {
	if p.asJSON {
		p.encode(updateJSON{
			Time:      u.At,
			Event:     "update",
			Mode:      u.Resolved.Mode.String(),
			Source:    u.Resolved.Source,
			Delivered: u.Delivered.String(),
			Changed:   u.Changed,
			Reload:    u.Reload,
		})
		return
	}

	source := u.Resolved.Source
	if u.Reload {
		source += " (config reload)"
	}
	p.println(p.theme.RenderChange(u.At, u.Resolved.Mode, source))
}

func (p *updatePrinter) hooks(r usecase.HookResult) {
	if p.asJSON {
		out := updateJSON{Time: p.now(), Event: "hooks", Mode: r.Mode.String()}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		p.encode(out)
		return
	}

	if r.Err != nil {
		p.println(p.theme.RenderError(fmt.Errorf("hooks for %s: %w", r.Mode, r.Err)))
	}
}

func (p *updatePrinter) encode(v any) {
	if p.err != nil {
		return
	}
	p.err = json.NewEncoder(p.w).Encode(v)
}

func (p *updatePrinter) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}

// runWatchTUI drives the watch use case behind a bubbletea program. Quitting
// the program stops the watch.
func runWatchTUI(ctx context.Context, theme *styles.Theme, uc *usecase.WatchColorSchemeUseCase, input usecase.WatchColorSchemeInput) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model.NewWatchModel(theme), tea.WithContext(ctx), tea.WithAltScreen())

	input.OnUpdate = func(u usecase.ColorSchemeUpdate) {
		p.Send(model.ModeChangedMsg{Mode: u.Resolved.Mode, Source: u.Resolved.Source, At: u.At})
	}
	input.OnHooks = func(r usecase.HookResult) {
		p.Send(model.HookResultMsg{Mode: r.Mode, Err: r.Err})
	}

	var (
		wg      sync.WaitGroup
		execErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if execErr = uc.Execute(ctx, input); execErr != nil {
			p.Quit()
		}
	}()

	_, runErr := p.Run()
	cancel()
	wg.Wait()

	if execErr != nil {
		return execErr
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return nil
}
