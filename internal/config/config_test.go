package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_New_ShouldReadFileAndApplyDefaults(t *testing.T) {
	path := writeConfig(t, `
token: "file-token"
ConnectionStringDB: "postgres://localhost/finbot"
RatesTimeout: 2
BrokersList: ["kafka:9092"]
`)

	s, err := New(path)

	require.NoError(t, err)
	cfg := s.GetConfig()
	assert.Equal(t, "file-token", s.Token())
	assert.Equal(t, 2*time.Second, cfg.RatesTimeoutDuration())
	assert.Equal(t, 30*time.Minute, cfg.RatesCacheDuration())
	assert.Equal(t, 30*time.Minute, cfg.RatesUpdateDuration())
	assert.Equal(t, defaultRatesURL, cfg.RatesURL)
	assert.Equal(t, []string{"kafka:9092"}, cfg.BrokersList)
	assert.Equal(t, defaultWorkers, cfg.Workers)
	assert.Equal(t, defaultKafkaTopic, cfg.KafkaTopic)
}

func Test_New_ShouldPreferEnvironment(t *testing.T) {
	path := writeConfig(t, `
token: "file-token"
ConnectionStringDB: "postgres://localhost/finbot"
`)
	t.Setenv("FINBOT_TOKEN", "env-token")
	t.Setenv("FINBOT_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("FINBOT_WORKERS", "3")

	s, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, "env-token", s.Token())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, s.GetConfig().BrokersList)
	assert.Equal(t, 3, s.GetConfig().Workers)
}

func Test_New_ShouldWorkWithoutFile(t *testing.T) {
	t.Setenv("FINBOT_DB", "postgres://localhost/finbot")

	s, err := New(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.ErrorIs(t, s.GetConfig().RequireToken(), ErrNoToken)
}

func Test_New_ShouldFailOnBrokenYAML(t *testing.T) {
	_, err := New(writeConfig(t, "token: [unclosed"))

	assert.Error(t, err)
}

func Test_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "нет строки подключения", cfg: Config{Token: "t"}, wantErr: true},
		{name: "отрицательный таймаут", cfg: Config{ConnectionStringDB: "db", RatesTimeout: -1}, wantErr: true},
		{name: "минимальная конфигурация", cfg: Config{ConnectionStringDB: "db"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, defaultHealthAddr, tt.cfg.HealthAddr)
		})
	}
}

func Test_Normalize_ShouldTrimRatesURL(t *testing.T) {
	cfg := Config{ConnectionStringDB: "db", RatesURL: "http://rates.local/v6/"}

	require.NoError(t, Normalize(&cfg))

	assert.Equal(t, "http://rates.local/v6", cfg.RatesURL)
}
