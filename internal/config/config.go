// Package config handles sphereuv configuration loading.
package config

import "github.com/Faultbox/sphereuv/pkg/obj"

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds the fixed directives written to the output mesh.
type OutputConfig struct {
	MaterialLib string `yaml:"mtllib"`
	Object      string `yaml:"object"`
	Material    string `yaml:"usemtl"`
	Smoothing   string `yaml:"smoothing"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	h := obj.DefaultHeader()
	return &Config{
		Output: OutputConfig{
			MaterialLib: h.MaterialLib,
			Object:      h.Object,
			Material:    h.Material,
			Smoothing:   h.Smoothing,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Header returns the output directives as an obj.Header.
func (c *Config) Header() obj.Header {
	return obj.Header{
		MaterialLib: c.Output.MaterialLib,
		Object:      c.Output.Object,
		Material:    c.Output.Material,
		Smoothing:   c.Output.Smoothing,
	}
}
