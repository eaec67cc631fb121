package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/yaap/hardware-interfaces/internal/codegen/common"
	"github.com/yaap/hardware-interfaces/internal/config"
	"github.com/yaap/hardware-interfaces/internal/configpaths"
	"github.com/yaap/hardware-interfaces/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("annotationgen"),
		kong.Description("Generate Java and C++ enums based on annotations in VehicleProperty.aidl"),
		kong.UsageOnError(),
		kong.Vars{"version": common.BuildVersion()},
		// Flags and env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.NewLogger(cli.Log, cli.ConsoleStdout(ctx.Command()), os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx.Bind(logger)
	err = ctx.Run()

	for _, c := range closeFiles {
		_ = c.Close()
	}
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("ANNOTATIONGEN_CONFIG")
}
