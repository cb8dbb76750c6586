// Package config reads the optional brushfix.yaml sidecar that overrides
// default epsilon factor, wad list path, and map version before flags are
// parsed (SPEC_FULL.md §2.1). The sidecar is read from the current working
// directory. Flags win over the sidecar, except that the CLI cannot tell a
// flag given at its default value (-e 1, -m 220, a bare -w) from an absent
// one, so a sidecar value replaces those.
package config

import (
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the sidecar's shape. Zero values mean "not set"; the CLI
// applies its own defaults afterward for anything the sidecar left zero.
type Config struct {
	EpsilonFactor float64 `yaml:"epsilon_factor"`
	WadList       string  `yaml:"wad_list"`
	MapVersion    int     `yaml:"map_version"`
}

// Load reads path if it exists. A missing file is not an error: it
// returns a zero Config so the caller's own defaults apply unchanged.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
