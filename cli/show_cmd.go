package cli

import (
	"github.com/mtsuhr/coffee-shop-env/environment"
	"github.com/spf13/cobra"
)

var showFormat string

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", string(environment.FormatJSON), "output format (json, yaml, dotenv or js)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "print the environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := environment.ParseFormat(showFormat)
		if err != nil {
			return err
		}

		cfg, err := loadEnvironment()
		if err != nil {
			return err
		}

		return environment.Encode(cmd.OutOrStdout(), cfg, format)
	},
}
