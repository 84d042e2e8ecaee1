// Package config defines the CLI structure and configuration for ddtio.
package config

import (
	"github.com/arcadehw/ddtio/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"DDTIO_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"DDTIO_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	ConfigFile string `name:"config" help:"Path to a config file" env:"DDTIO_CONFIG"`

	Poll   cmd.Poll          `cmd:"" help:"Poll the I/O board and mirror input state to the log"`
	Leds   cmd.Leds          `cmd:"" help:"Push a color update to an LED board"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
