package cookie

import (
	"net/http"
	"strings"
)

// Config holds the cookie manager settings loaded from the environment.
type Config struct {
	// Secrets is a comma separated list; the first one encrypts, all of them decrypt.
	Secrets  string        `env:"COOKIE_SECRETS,required"`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"`
}

// NewFromConfig builds a Manager from cfg. Extra options override the
// configured defaults.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	base := []Option{
		WithPath(cfg.Path),
		WithDomain(cfg.Domain),
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
		WithSameSite(cfg.SameSite),
	}
	return New(splitSecrets(cfg.Secrets), append(base, opts...)...)
}

func splitSecrets(raw string) []string {
	var out []string
	for s := range strings.SplitSeq(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
