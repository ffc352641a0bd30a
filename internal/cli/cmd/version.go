package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/darkwatch/internal/cli/styles"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:         "version",
	Aliases:     []string{"about"},
	Short:       "Show version and build information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if versionJSON {
			return json.NewEncoder(w).Encode(buildInfo)
		}
		_, err := fmt.Fprintln(w, styles.NewAboutRenderer(plainTheme()).Render(buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "print JSON")
}
