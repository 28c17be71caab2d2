// Package presets contains named parameter sets for non-mainnet networks.
package presets

import (
	"fmt"
	"sort"

	"github.com/forwardblock/go-forwardblock/config"
)

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset %s already registered", name))
	}
	presets[name] = conf
}

// Options returns the names of all registered presets.
func Options() []string {
	rst := make([]string, 0, len(presets))
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get returns a copy of the named preset.
func Get(name string) (config.Config, error) {
	conf, exists := presets[name]
	if !exists {
		return config.Config{}, fmt.Errorf("preset %s is not registered. select one from %v", name, Options())
	}
	activations := make(map[string]uint64, len(conf.FlagActivations))
	for k, v := range conf.FlagActivations {
		activations[k] = v
	}
	conf.FlagActivations = activations
	return conf, nil
}
