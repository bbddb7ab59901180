package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"crm/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "crm"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "Warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Params{Config: newConfig("info", false), Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.Int("customer_id", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "crm", entry["service"])
	assert.EqualValues(t, 3, entry["customer_id"])
}

func TestNew_TextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Params{Config: newConfig("warn", true), Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Params{Config: newConfig("loud", false)})
	assert.Error(t, err)
}
