package cli

import (
	"github.com/caarlos0/env/v8"
	"github.com/mtsuhr/coffee-shop-env/environment"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/joho/godotenv/autoload"
)

// envPrefix is shared by the cli settings and the environment overlay.
const envPrefix = "COFFEE_SHOP_ENV_"

var logger *zap.SugaredLogger
var config Config
var variant string
var rootCmd = &cobra.Command{
	Use:   "coffee-shop-env",
	Short: "environment configuration for the coffee shop front end",
}

func initLogger() {
	var l *zap.Logger
	var e error
	if config.Production {
		l, e = zap.NewProduction()
	} else {
		l, e = zap.NewDevelopment()
	}
	cobra.CheckErr(e)
	logger = l.Sugar()
}

func initConfig() {
	cobra.CheckErr(env.ParseWithOptions(&config, env.Options{
		Prefix: envPrefix,
	}))
}

// loadEnvironment selects the variant from the --variant flag, the VARIANT
// setting or the build, and applies the overlay from ENV_FILE or the process
// environment.
func loadEnvironment() (environment.Config, error) {
	name := variant
	if name == "" {
		name = config.Variant
	}
	base, err := environment.Variant(name)
	if err != nil {
		return base, err
	}

	opts := environment.LoadOptions{
		Prefix: envPrefix,
		OnSet: func(name string) {
			logger.Debugf("environment overridden by %s", name)
		},
	}
	if config.EnvFile != "" {
		return environment.LoadFile(base, config.EnvFile, opts)
	}
	return environment.Load(base, opts)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "environment variant (development or production)")

	cobra.OnInitialize(initConfig, initLogger)
	cobra.OnFinalize(func() {
		if logger != nil {
			logger.Sync()
		}
	})
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
