// Package config defines the root command line of annotationgen. Every flag
// can also come from the environment or a JSON/YAML/TOML config file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/yaap/hardware-interfaces/internal/cmd"
	"github.com/yaap/hardware-interfaces/internal/log"
)

type CLI struct {
	ConfigFile string           `name:"config" help:"Path to a JSON, YAML or TOML config file" type:"path" env:"ANNOTATIONGEN_CONFIG"`
	Log        log.Config       `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate the C++ and Java sources derived from VehicleProperty.aidl annotations"`
	Scan     cmd.Scan          `cmd:"" help:"Parse VehicleProperty.aidl and dump the property records"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// ConsoleStdout picks the writer for console logs below error. A scan without
// --output prints its dump on stdout, so its logs move to stderr.
func (c *CLI) ConsoleStdout(command string) io.Writer {
	if strings.HasPrefix(command, "scan") && c.Scan.Output == "" {
		return os.Stderr
	}
	return os.Stdout
}
