package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("confirm_on_quit: false\n"))
	require.NoError(t, err)

	assert.False(t, cfg.ConfirmOnQuit)
	assert.Equal(t, 4, cfg.DefaultRows)
	assert.NotEmpty(t, cfg.StationsFile)
}

func TestParseKeepsExplicitValues(t *testing.T) {
	cfg, err := Parse([]byte("stations_file: /tmp/stations.json\ndefault_rows: 6\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stations.json", cfg.StationsFile)
	assert.Equal(t, 6, cfg.DefaultRows)
}

func TestParseClampsBadRows(t *testing.T) {
	cfg, err := Parse([]byte("default_rows: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.DefaultRows)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("default_rows: [broken"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Config{StationsFile: "/tmp/s.json", DefaultRows: 5, ConfirmOnQuit: true}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
