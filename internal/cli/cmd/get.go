package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/darkwatch/internal/application/usecase"
	"github.com/bnema/darkwatch/internal/cli/styles"
	"github.com/bnema/darkwatch/pkg/appearance"
)

var (
	getJSON   bool
	getPortal bool
	getPlain  bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current color scheme",
	Long: `Print the current color scheme.

By default the mode is resolved: appearance.color_scheme in the config wins,
then the desktop portal, GTK_THEME and gsettings are asked in that order.
With --portal only the desktop portal is asked and its errors are reported.

Examples:
  darkwatch get             # styled output
  darkwatch get --plain     # "dark", "light" or "default"
  darkwatch get --json      # {"mode":"dark","source":"portal","dark":true}`,
	Args: cobra.NoArgs,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "print JSON")
	getCmd.Flags().BoolVar(&getPortal, "portal", false, "read the desktop portal only")
	getCmd.Flags().BoolVar(&getPlain, "plain", false, "print the bare mode name")
	getCmd.MarkFlagsMutuallyExclusive("json", "plain")
}

func runGet(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	uc := usecase.NewGetColorSchemeUseCase(a.Resolver, a.Portal)
	out, err := uc.Execute(a.Ctx(), usecase.GetColorSchemeInput{PortalOnly: getPortal})
	if err != nil {
		return err
	}

	return writeMode(cmd.OutOrStdout(), a.Theme, out, outputFormat(getJSON, getPlain))
}

type format int

const (
	formatStyled format = iota
	formatJSON
	formatPlain
)

func outputFormat(asJSON, plain bool) format {
	switch {
	case asJSON:
		return formatJSON
	case plain:
		return formatPlain
	default:
		return formatStyled
	}
}

// modeJSON is the JSON shape of `get --json`.
type modeJSON struct {
	Mode   string `json:"mode"`
	Source string `json:"source"`
	Dark   bool   `json:"dark"`
}

func writeMode(w io.Writer, theme *styles.Theme, out *usecase.GetColorSchemeOutput, f format) error {
	var err error
	switch f {
	case formatJSON:
		err = json.NewEncoder(w).Encode(modeJSON{
			Mode:   out.Mode.String(),
			Source: out.Source,
			Dark:   out.Mode == appearance.ModeDark,
		})
	case formatPlain:
		_, err = fmt.Fprintln(w, out.Mode.String())
	default:
		_, err = fmt.Fprintln(w, theme.RenderMode(out.Mode, out.Source))
	}
	return err
}
