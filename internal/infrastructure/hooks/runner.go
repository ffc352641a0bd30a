// Package hooks runs user commands when the resolved color scheme changes.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/darkwatch/internal/application/port"
	"github.com/bnema/darkwatch/internal/logging"
	"github.com/bnema/darkwatch/pkg/appearance"
)

const (
	// EnvMode carries the mode name into every hook.
	EnvMode = "DARKWATCH_MODE"

	shell       = "sh"
	argv0       = "darkwatch"
	maxStderr   = 512
	defaultWait = 5 * time.Second
	// maxParallel caps how many hooks of one mode run at once.
	maxParallel = 8
	// pipeGrace bounds waiting on stderr held open by orphaned children.
	pipeGrace = time.Second
)

// Commands maps each mode to the shell commands run for it.
type Commands struct {
	Dark    []string
	Light   []string
	Default []string
}

func (c Commands) forMode(mode appearance.Mode) []string {
	switch mode {
	case appearance.ModeDark:
		return c.Dark
	case appearance.ModeLight:
		return c.Light
	default:
		return c.Default
	}
}

// execFunc runs one command line; swapped in tests.
type execFunc func(ctx context.Context, command string, mode appearance.Mode) error

// Runner implements port.HookRunner.
type Runner struct {
	mu       sync.RWMutex
	commands Commands
	timeout  time.Duration
	limit    int
	exec     execFunc
}

var _ port.HookRunner = (*Runner)(nil)

// NewRunner creates a runner. A non-positive timeout selects five seconds.
func NewRunner(commands Commands, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = defaultWait
	}
	return &Runner{commands: commands, timeout: timeout, limit: maxParallel, exec: runShell}
}

// SetCommands replaces the command lists, e.g. after a config reload.
func (r *Runner) SetCommands(commands Commands) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = commands
}

// Run starts the commands configured for mode, at most maxParallel at a
// time, and waits for all of them. One failing hook does not cancel the
// others.
func (r *Runner) Run(ctx context.Context, mode appearance.Mode) error {
	r.mu.RLock()
	commands := append([]string(nil), r.commands.forMode(mode)...)
	r.mu.RUnlock()

	if len(commands) == 0 {
		return nil
	}

	ctx = logging.WithComponent(ctx, "hooks")
	log := logging.FromContext(ctx)
	log.Debug().Str("mode", mode.String()).Int("hooks", len(commands)).Msg("running hooks")

	var (
		g      errgroup.Group
		errMu  sync.Mutex
		failed []error
	)
	g.SetLimit(r.limit)
	for _, command := range commands {
		g.Go(func() error {
			hookCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			start := time.Now()
			err := r.exec(hookCtx, command, mode)
			if err != nil {
				log.Warn().Err(err).Str("hook", command).Msg("hook failed")
				errMu.Lock()
				failed = append(failed, fmt.Errorf("hook %q: %w", command, err))
				errMu.Unlock()
				return nil
			}
			log.Debug().Str("hook", command).Dur("took", time.Since(start)).Msg("hook finished")
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(failed...)
}

// runShell runs command with `sh -c`, passing the mode as $1.
func runShell(ctx context.Context, command string, mode appearance.Mode) error {
	cmd := exec.CommandContext(ctx, shell, "-c", command, argv0, mode.String())
	cmd.Env = append(os.Environ(), EnvMode+"="+mode.String())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = pipeGrace

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			if len(msg) > maxStderr {
				msg = msg[:maxStderr]
			}
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
