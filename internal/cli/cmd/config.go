package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/darkwatch/internal/application/usecase"
	"github.com/bnema/darkwatch/internal/cli/styles"
	"github.com/bnema/darkwatch/internal/infrastructure/config"
	"github.com/bnema/darkwatch/pkg/appearance"
)

var (
	configForce  bool
	configDryRun bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, print, create, edit and migrate the darkwatch configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file location",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment variables and
normalization have been applied.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON schema of the config file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default config file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to the config file",
	Long: `Compare the config file with the available defaults and add any missing
settings. Existing settings are never modified.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configInitCmd, configEditCmd, configMigrateCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configMigrateCmd.Flags().BoolVarP(&configDryRun, "dry-run", "n", false, "list missing settings without writing")
}

// configFilePath returns --config or the XDG location.
func configFilePath() (string, error) {
	if options.ConfigFile != "" {
		return options.ConfigFile, nil
	}
	return config.GetConfigFile()
}

// plainTheme is used by commands that run without the app.
func plainTheme() *styles.Theme {
	return styles.NewTheme(appearance.ModeDefault)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	renderer := styles.NewConfigRenderer(plainTheme())
	w := cmd.OutOrStdout()
	if _, err := fmt.Fprint(w, renderer.RenderPath(path, statErr == nil)); err != nil {
		return err
	}
	if statErr != nil {
		return nil
	}

	// A file that does not parse is reported by the commands that load it.
	if result, checkErr := config.NewMigrator(path).CheckMigration(); checkErr == nil && result != nil {
		_, err = fmt.Fprint(w, renderer.RenderMigrateHint(len(result.MissingKeys)))
	}
	return err
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.EncodeConfig(a.ConfigManager.Get())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	uc := usecase.NewGetConfigSchemaUseCase(config.SchemaProvider{})
	out, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if _, err := w.Write(out.Schema); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(plainTheme())
	w := cmd.OutOrStdout()

	if err := config.InitConfigFile(path, configForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			_, _ = fmt.Fprint(w, renderer.RenderExists(path))
		}
		return err
	}

	_, err = fmt.Fprint(w, renderer.RenderCreated(path))
	return err
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	// Get editor from environment (prefer $VISUAL, fallback to $EDITOR)
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, a.ConfigManager.ConfigFile())
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	return migrateConfig(cmd.OutOrStdout(), styles.NewConfigRenderer(plainTheme()), path, config.NewMigrator(path), configDryRun)
}

// configMigrator is the part of config.Migrator the migrate command uses.
type configMigrator interface {
	CheckMigration() (*config.MigrationResult, error)
	Migrate() ([]string, error)
}

func migrateConfig(w io.Writer, renderer *styles.ConfigRenderer, path string, m configMigrator, dryRun bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_, err = fmt.Fprint(w, renderer.RenderPath(path, false))
		return err
	}

	result, err := m.CheckMigration()
	if err != nil {
		return err
	}
	if result == nil {
		_, err = fmt.Fprint(w, renderer.RenderUpToDate(path))
		return err
	}

	if _, err := fmt.Fprint(w, renderer.RenderMissingKeys(result.ConfigFile, result.MissingKeys)); err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	added, err := m.Migrate()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, renderer.RenderMigrated(len(added), result.ConfigFile))
	return err
}
