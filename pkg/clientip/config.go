package clientip

// Config lists the proxy headers to trust, highest priority first.
type Config struct {
	TrustedHeaders []string `env:"CLIENTIP_TRUSTED_HEADERS" envSeparator:","`
}
