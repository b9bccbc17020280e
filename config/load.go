package config

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads a RunConfig from YAML, starting from Default and overwriting
// only the keys r's document sets, then applying opts in order.
func Load(r io.Reader, opts ...Option) (RunConfig, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return RunConfig{}, err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return RunConfig{}, err
		}
	}
	return cfg.Apply(opts...), nil
}
