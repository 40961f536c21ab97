package environment

// Config is the environment configuration handed to the front end.
// It is a plain value: copies never share state with the variant they came from.
type Config struct {
	Production   bool   `json:"production" yaml:"production" env:"PRODUCTION"`
	APIServerURL string `json:"apiServerUrl" yaml:"apiServerUrl" env:"API_SERVER_URL"`
	Auth0        Auth0  `json:"auth0" yaml:"auth0" envPrefix:"AUTH0_"`
}

type Auth0 struct {
	// URL is the tenant domain prefix, e.g. "mtsuhr2021.us" for mtsuhr2021.us.auth0.com
	URL         string `json:"url" yaml:"url" env:"URL"`
	Audience    string `json:"audience" yaml:"audience" env:"AUDIENCE"`
	ClientID    string `json:"clientId" yaml:"clientId" env:"CLIENT_ID"`
	CallbackURL string `json:"callbackURL" yaml:"callbackURL" env:"CALLBACK_URL"`
}

// variable names used by the overlay and the dotenv format, without prefix
const (
	VarProduction       = "PRODUCTION"
	VarAPIServerURL     = "API_SERVER_URL"
	VarAuth0URL         = "AUTH0_URL"
	VarAuth0Audience    = "AUTH0_AUDIENCE"
	VarAuth0ClientID    = "AUTH0_CLIENT_ID"
	VarAuth0CallbackURL = "AUTH0_CALLBACK_URL"
	auth0DomainSuffix   = ".auth0.com"
	auth0JWKSPath       = "/.well-known/jwks.json"
)

// Domain returns the tenant host, e.g. mtsuhr2021.us.auth0.com.
func (a Auth0) Domain() string {
	return a.URL + auth0DomainSuffix
}

// Issuer is the iss claim of tokens minted by the tenant.
func (a Auth0) Issuer() string {
	return "https://" + a.Domain() + "/"
}

func (a Auth0) JWKSURL() string {
	return "https://" + a.Domain() + auth0JWKSPath
}

func (c Config) vars() map[string]string {
	production := "false"
	if c.Production {
		production = "true"
	}
	return map[string]string{
		VarProduction:       production,
		VarAPIServerURL:     c.APIServerURL,
		VarAuth0URL:         c.Auth0.URL,
		VarAuth0Audience:    c.Auth0.Audience,
		VarAuth0ClientID:    c.Auth0.ClientID,
		VarAuth0CallbackURL: c.Auth0.CallbackURL,
	}
}
