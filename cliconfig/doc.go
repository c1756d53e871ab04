// Package cliconfig provides the command-line layer's tunables and a
// small leveled logger. It covers the engine's two runtime knobs, the
// digraph threshold divisor and the parallel package's worker count,
// plus the log level. The logger built from a Config writes to standard
// error.
//
// Config is loaded with github.com/spf13/viper so it can come from a
// YAML file, environment variables, or defaults.
package cliconfig
