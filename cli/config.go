package cli

type Config struct {
	Production bool   `env:"PRODUCTION"`
	Variant    string `env:"VARIANT"`
	EnvFile    string `env:"ENV_FILE"`
	Host       string `env:"HOST" envDefault:"0.0.0.0"`
	Port       string `env:"PORT" envDefault:"3000"`
	CacheSize  int    `env:"CACHE_SIZE" envDefault:"8"`
}
