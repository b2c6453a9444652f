package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServiceName string

	ServerPort int

	DatabaseURL  string
	DatabaseName string

	StripeSecretKey string
	StripeCurrency  string

	ClientOrigins []string
	SiteDomain    string

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string

	LogLevel string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "local-chef-bazaar"),

		ServerPort: EnvIntDefault("PORT", 3000),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: EnvDefault("DB_NAME", "local_chef_bazaar_data"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		StripeCurrency:  EnvDefault("STRIPE_CURRENCY", "usd"),

		ClientOrigins: CSV(EnvDefault("CLIENT_ORIGIN", "http://localhost:5173")),
		SiteDomain:    strings.TrimRight(EnvDefault("SITE_DOMAIN", "http://localhost:5173"), "/"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

// MustLoad is Load plus the checks for keys the server cannot start without.
func MustLoad() Config {
	cfg := Load()

	MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	MustNonEmpty(cfg.StripeSecretKey, "STRIPE_SECRET_KEY")

	return cfg
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
