package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// GridpadDir returns ~/.gridpad.
func GridpadDir() string {
	return filepath.Join(home(), ".gridpad")
}

// ConfigFile returns ~/.gridpad/config.yaml.
func ConfigFile() string {
	return filepath.Join(GridpadDir(), "config.yaml")
}

// StationsFile returns ~/.gridpad/stations.json, the default dataset
// location when the config does not name one.
func StationsFile() string {
	return filepath.Join(GridpadDir(), "stations.json")
}
