package config

import "flag"

var (
	flagConfig   = new(string)
	flagDebug    = new(bool)
	flagLogFile  = new(string)
	flagMtllib   = new(string)
	flagObject   = new(string)
	flagMaterial = new(string)
)

// RegisterFlags binds the config flags to fs and resets them to their
// defaults. Call it before fs.Parse.
func RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(flagConfig, "config", "", "Path to config file")
	fs.BoolVar(flagDebug, "debug", false, "Enable debug logging")
	fs.StringVar(flagLogFile, "log-file", "", "Also write logs to this file")
	fs.StringVar(flagMtllib, "mtllib", "", "Material library named in the output")
	fs.StringVar(flagObject, "object", "", "Object name written to the output")
	fs.StringVar(flagMaterial, "material", "", "Material used by the output faces")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagMtllib != "" {
		cfg.Output.MaterialLib = *flagMtllib
	}
	if *flagObject != "" {
		cfg.Output.Object = *flagObject
	}
	if *flagMaterial != "" {
		cfg.Output.Material = *flagMaterial
	}
}
