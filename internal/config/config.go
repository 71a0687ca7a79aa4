package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	Env                  string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	Google GoogleConfig
}

// GoogleConfig is the OAuth client registered with Google.
// Any empty field means Google login is not configured.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

func (g GoogleConfig) Complete() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.RedirectURI != ""
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             ":" + getenv("PORT", "8080"),
		Env:                  getenv("ENV", "development"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		Google: GoogleConfig{
			ClientID:     getenv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getenv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURI:  getenv("GOOGLE_REDIRECT_URI", ""),
		},
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
