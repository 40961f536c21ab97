//go:build production

package environment

// DefaultVariant is the variant selected at build time.
const DefaultVariant = VariantProduction

// Default returns the variant selected at build time.
func Default() Config {
	return Production()
}
