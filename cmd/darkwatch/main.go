// Command darkwatch reports and follows the desktop color scheme.
package main

import (
	"context"
	"runtime"

	"github.com/bnema/darkwatch/internal/cli/cmd"
	"github.com/bnema/darkwatch/internal/domain/build"
	"github.com/bnema/darkwatch/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())
	defer logging.RecoverAndLog(ctx)

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
