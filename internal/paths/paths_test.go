package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/skyfreq/gridpad/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestGridpadDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.GridpadDir(), home))
	assert.True(t, strings.HasSuffix(paths.GridpadDir(), ".gridpad"))
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}

func TestStationsFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.StationsFile(), "stations.json"))
}
