package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "kafka:9092", want: []string{"kafka:9092"}},
		{name: "trims and skips blanks", in: " a:1 , ,b:2,", want: []string{"a:1", "b:2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CSV(tt.in))
		})
	}
}

func TestEnvIntDefault(t *testing.T) {
	t.Setenv("TEST_PORT", "4000")
	assert.Equal(t, 4000, EnvIntDefault("TEST_PORT", 1))

	t.Setenv("TEST_PORT", "not-a-number")
	assert.Equal(t, 1, EnvIntDefault("TEST_PORT", 1))

	t.Setenv("TEST_PORT", "")
	assert.Equal(t, 1, EnvIntDefault("TEST_PORT", 1))
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVICE_NAME", "PORT", "DB_NAME", "STRIPE_CURRENCY", "CLIENT_ORIGIN", "SITE_DOMAIN", "KAFKA_BROKERS", "ES_URL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "local-chef-bazaar", cfg.ServiceName)
	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, "local_chef_bazaar_data", cfg.DatabaseName)
	assert.Equal(t, "usd", cfg.StripeCurrency)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.ClientOrigins)
	assert.Equal(t, "http://localhost:5173", cfg.SiteDomain)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.ESURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("SITE_DOMAIN", "https://bazaar.example.com/")
	t.Setenv("CLIENT_ORIGIN", "https://a.example.com,https://b.example.com")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg := Load()
	require.Equal(t, 8081, cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "https://bazaar.example.com", cfg.SiteDomain)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.ClientOrigins)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}
