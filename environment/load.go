package environment

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type LoadOptions struct {
	// Prefix is prepended to every variable name, e.g. COFFEE_SHOP_ENV_
	Prefix string
	// Environment replaces the process environment when not nil.
	Environment map[string]string
	// OnSet is called for every variable that overrides a field.
	OnSet func(name string)
}

// Load returns a copy of base where every field whose variable is set has been
// replaced by that value. Fields without a variable keep the base value.
func Load(base Config, opts LoadOptions) (Config, error) {
	cfg := base
	envOpts := env.Options{
		Prefix:      opts.Prefix,
		Environment: opts.Environment,
	}
	if opts.OnSet != nil {
		// env reports every tagged field, set or not
		envOpts.OnSet = func(tag string, value interface{}, isDefault bool) {
			if v, ok := value.(string); ok && v != "" && !isDefault {
				opts.OnSet(tag)
			}
		}
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return base, fmt.Errorf("unable to load environment: %w", err)
	}
	return cfg, nil
}

// LoadFile is Load with the variables read from a dotenv file only; the
// process environment is ignored.
func LoadFile(base Config, path string, opts LoadOptions) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return base, fmt.Errorf("unable to read %s: %w", path, err)
	}
	opts.Environment = vars
	return Load(base, opts)
}
