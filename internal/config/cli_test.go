package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *CLI, opts ...kong.Option) *kong.Kong {
	t.Helper()
	opts = append([]kong.Option{
		kong.Name("annotationgen"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	}, opts...)
	parser, err := kong.New(cli, opts...)
	require.NoError(t, err)
	return parser
}

func TestGenerateIsDefaultCommand(t *testing.T) {
	var cli CLI
	top := t.TempDir()
	ctx, err := newParser(t, &cli).Parse([]string{"--android-build-top", top, "--check-only"})
	require.NoError(t, err)

	assert.Equal(t, "generate", ctx.Command())
	assert.Equal(t, top, cli.Generate.AndroidBuildTop)
	assert.True(t, cli.Generate.CheckOnly)
	assert.Equal(t, "auto", cli.Generate.Diff)
	assert.Equal(t, "info", cli.Log.Level)
}

func TestBuildTopFromEnvironment(t *testing.T) {
	top := t.TempDir()
	t.Setenv("ANDROID_BUILD_TOP", top)

	var cli CLI
	_, err := newParser(t, &cli).Parse([]string{"generate"})
	require.NoError(t, err)
	assert.Equal(t, top, cli.Generate.AndroidBuildTop)
}

func TestPreuploadFilesAndCSV(t *testing.T) {
	var cli CLI
	_, err := newParser(t, &cli).Parse([]string{
		"generate",
		"--preupload-files", "a/VehicleProperty.aidl,b/Foo.cpp",
		"--output-csv", "props.csv",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/VehicleProperty.aidl", "b/Foo.cpp"}, cli.Generate.PreuploadFiles)
	assert.True(t, filepath.IsAbs(cli.Generate.OutputCSV))
}

func TestScanCommand(t *testing.T) {
	var cli CLI
	ctx, err := newParser(t, &cli).Parse([]string{"scan", "--format", "toml", "--log.level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "scan", ctx.Command())
	assert.Equal(t, "toml", cli.Scan.Format)
	assert.Equal(t, "debug", cli.Log.Level)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "annotationgen.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"check_only": true, "diff": "never", "log": {"level": "warn"}}`), 0o644))

	var cli CLI
	_, err := newParser(t, &cli, kong.Configuration(kong.JSON, cfg)).Parse([]string{"generate", "--diff", "always"})
	require.NoError(t, err)
	assert.True(t, cli.Generate.CheckOnly)
	assert.Equal(t, "always", cli.Generate.Diff, "flags override config values")
	assert.Equal(t, "warn", cli.Log.Level)
}

func TestConsoleStdout(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *os.File
	}{
		{"scan to stdout", []string{"scan"}, os.Stderr},
		{"scan to file", []string{"scan", "--output", "props.json"}, os.Stdout},
		{"generate", []string{"generate"}, os.Stdout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cli CLI
			ctx, err := newParser(t, &cli).Parse(tt.args)
			require.NoError(t, err)
			assert.Same(t, tt.want, cli.ConsoleStdout(ctx.Command()))
		})
	}
}
