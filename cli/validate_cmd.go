package cli

import (
	"fmt"

	"github.com/mtsuhr/coffee-shop-env/environment"
	"github.com/spf13/cobra"
)

var validateAll bool

func init() {
	validateCmd.Flags().BoolVar(&validateAll, "all", false, "validate every shipped variant instead of the loaded environment")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "check that the environment is complete and well formed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateAll {
			if err := environment.ValidateVariants(environment.AllVariants()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d variants ok\n", len(environment.Variants()))
			return nil
		}

		cfg, err := loadEnvironment()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}
