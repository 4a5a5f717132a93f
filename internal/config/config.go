// Package config loads optional YAML overrides for the simulator's memory
// partition sizes and resource unit counts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joeycumines/osim/internal/osim"
)

// File is the on-disk shape of an optional simulator config override. Any
// field left zero (or ResourceUnits left nil/partial) falls back to the
// osim package's documented defaults.
type File struct {
	RealTimePartitionSize int            `yaml:"real_time_partition_size"`
	UserPartitionSize     int            `yaml:"user_partition_size"`
	ResourceUnits         map[string]int `yaml:"resource_units"`
}

var resourceByName = map[string]osim.Resource{
	"scanner":     osim.Scanner,
	"printer":     osim.Printer,
	"modem":       osim.Modem,
	"sata_device": osim.SataDevice,
}

// Load reads and parses a YAML config file at path, translating it into an
// *osim.Config. A path of "" returns nil (no override, i.e. defaults).
func Load(path string) (*osim.Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	units := make(map[osim.Resource]int, len(f.ResourceUnits))
	for name, n := range f.ResourceUnits {
		r, ok := resourceByName[name]
		if !ok {
			return nil, fmt.Errorf("config: %s: unknown resource %q", path, name)
		}
		units[r] = n
	}

	return &osim.Config{
		RealTimePartitionSize: f.RealTimePartitionSize,
		UserPartitionSize:     f.UserPartitionSize,
		ResourceUnits:         units,
	}, nil
}
