package common

import (
	"runtime/debug"
	"strings"
)

// Version is set via ldflags at build time:
// -ldflags "-X github.com/yaap/hardware-interfaces/internal/codegen/common.Version=x.y.z"
var Version = ""

// BuildVersion returns the ldflags version, falling back to the module
// version recorded by `go install` and finally to "0.0.1-dev".
func BuildVersion() string {
	if v := strings.TrimPrefix(Version, "v"); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "0.0.1-dev"
}
