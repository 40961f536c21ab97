//go:build !production

package environment

// DefaultVariant is the variant selected at build time.
const DefaultVariant = VariantDevelopment

// Default returns the variant selected at build time.
// Build with -tags production to ship the production variant.
func Default() Config {
	return Development()
}
