package cmd

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Channel describes one named channel preset in channels.yaml: the
// derived constants the engine consumes but configuration owns.
type Channel struct {
	DataRateBps float64 `yaml:"data_rate_bps"`
	SlotSeconds float64 `yaml:"slot_seconds"`
	MinWindow   int64   `yaml:"min_window"`
}

// ChannelsConfig represents the full channels.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true)
// strict parsing: typos in preset files must cause errors, not silently
// fall back to defaults.
type ChannelsConfig struct {
	Version  string             `yaml:"version"`
	Channels map[string]Channel `yaml:"channels"`
}

// loadChannelsConfig parses a channel presets file with strict field
// checking.
func loadChannelsConfig(path string) (ChannelsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChannelsConfig{}, err
	}
	var cfg ChannelsConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ChannelsConfig{}, err
	}
	return cfg, nil
}

// LookupChannel returns the named preset from the channels file. An
// unreadable file or unknown preset is fatal, same as any other invalid
// configuration: no simulation state is built from it.
func LookupChannel(path, name string) Channel {
	cfg, err := loadChannelsConfig(path)
	if err != nil {
		logrus.Fatalf("Failed to load channels file %s: %v", path, err)
	}
	ch, ok := cfg.Channels[name]
	if !ok {
		logrus.Fatalf("Unknown channel preset %q in %s", name, path)
	}
	return ch
}
