package cli

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/mtsuhr/coffee-shop-env/environment"
	"github.com/spf13/cobra"
)

var tokenPublicKeyPath string
var tokenJWKSPath string

func init() {
	tokenCmd.Flags().StringVar(&tokenPublicKeyPath, "public-key", "", "verify the signature with this PEM encoded RSA public key")
	tokenCmd.Flags().StringVar(&tokenJWKSPath, "jwks", "", "verify the signature with a key from this JWKS file")
	tokenCmd.MarkFlagsMutuallyExclusive("public-key", "jwks")
	rootCmd.AddCommand(tokenCmd)
}

func loadKeySource() (environment.KeySource, error) {
	if tokenPublicKeyPath != "" {
		return environment.LoadPEMKey(tokenPublicKeyPath)
	} else if tokenJWKSPath != "" {
		return environment.LoadJWKS(tokenJWKSPath)
	}
	return nil, nil
}

var tokenCmd = &cobra.Command{
	Use:   "token [TOKEN|-]",
	Short: "check an access token against the environment's audience and issuer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]
		if raw == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			raw = string(data)
		}
		if strings.TrimSpace(raw) == "" {
			return errors.New("empty token")
		}

		cfg, err := loadEnvironment()
		if err != nil {
			return err
		}

		key, err := loadKeySource()
		if err != nil {
			return err
		}
		if key == nil {
			logger.Warn("no key given, signature not verified")
		}

		report, checkErr := environment.CheckToken(cfg, raw, key)
		if report != nil {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		}
		return checkErr
	},
}
