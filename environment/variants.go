package environment

import (
	"errors"
	"fmt"
	"strings"
)

const (
	VariantDevelopment = "development"
	VariantProduction  = "production"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Development is the configuration used while running the front end locally
// against a local API server.
func Development() Config {
	return Config{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: Auth0{
			URL:         "mtsuhr2021.us",
			Audience:    "http://127.0.0.1:5000",
			ClientID:    "HaRoULr3pJw6z0LGzAHTWCPJRIlVBwTn",
			CallbackURL: "http://127.0.0.1:8100",
		},
	}
}

// Production shares the tenant and client of Development. The deployed
// addresses are expected to come from the overlay, see Load.
func Production() Config {
	c := Development()
	c.Production = true
	return c
}

// Variants returns the canonical variant names.
func Variants() []string {
	return []string{VariantDevelopment, VariantProduction}
}

// AllVariants returns every shipped variant keyed by canonical name.
func AllVariants() map[string]Config {
	return map[string]Config{
		VariantDevelopment: Development(),
		VariantProduction:  Production(),
	}
}

// Variant looks up a variant by name. An empty name selects the variant the
// binary was built with.
func Variant(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Default(), nil
	case VariantDevelopment, "dev":
		return Development(), nil
	case VariantProduction, "prod":
		return Production(), nil
	}
	return Config{}, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownVariant, name, strings.Join(Variants(), ", "))
}
