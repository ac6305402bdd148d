package logs

import (
	"bytes"
	"testing"

	"cakes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.Env.ServiceName = "cakes"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewLogger_TagsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, logConfig("info", false))
	require.NoError(t, err)

	logger.Info("order placed")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"service":"cakes"`)
	assert.Contains(t, out, `"env":"production"`)
	assert.Contains(t, out, "order placed")
	assert.NotContains(t, out, "hidden")
}

func TestNewLogger_PrettyUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, logConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("cart priced")

	assert.Contains(t, buf.String(), "msg=\"cart priced\"")
	assert.Contains(t, buf.String(), "service=cakes")
}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "", "warning", " error "} {
		_, err := parseLogLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
