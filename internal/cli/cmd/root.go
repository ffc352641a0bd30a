// Package cmd provides Cobra CLI commands for darkwatch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/darkwatch/internal/cli"
	"github.com/bnema/darkwatch/internal/domain/build"
)

// annotationNoApp marks commands that run without loading the config.
const annotationNoApp = "darkwatch/no-app"

var (
	app       *cli.App
	buildInfo build.Info
	options   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "darkwatch",
		Short: "Report and follow the desktop color scheme",
		Long: `darkwatch reads the desktop's preferred color scheme (default, dark or light)
from the XDG desktop portal and follows its changes.

Use 'darkwatch get' for a one-shot reading and 'darkwatch watch' to follow
changes and run the hooks configured for each mode.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(options)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&options.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/darkwatch/config.toml)")
	rootCmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// needsApp reports whether cmd loads the config and builds services.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion":
			return false
		}
		if _, ok := c.Annotations[annotationNoApp]; ok {
			return false
		}
	}
	return true
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
