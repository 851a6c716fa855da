// Package config loads pipeline options from TOML files.
//
// A config file mirrors [pipeline.Options]:
//
//	kind = "week"
//	from = 2024
//	to   = 2027
//	mode = "rowbox"
//	formats = ["svg", "pdf"]
//
//	[separators]
//	interval = 4
//	width    = 0.03
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
//
// [pipeline.Options]: github.com/matzehuels/gridcal/pkg/pipeline.Options
package config

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/pipeline"
)

// Parse decodes TOML data into pipeline options.
func Parse(data []byte) (pipeline.Options, error) {
	var opts pipeline.Options
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&opts)
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}

// Load reads and parses the config file at path.
func Load(path string) (pipeline.Options, error) {
	if err := errors.ValidatePath(path); err != nil {
		return pipeline.Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}
