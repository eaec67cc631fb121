package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsRoutesUserPath(t *testing.T) {
	tests := []struct {
		path string
		pick func(j, y, t []string) []string
	}{
		{"custom.json", func(j, _, _ []string) []string { return j }},
		{"custom.yml", func(_, y, _ []string) []string { return y }},
		{"custom.yaml", func(_, y, _ []string) []string { return y }},
		{"custom.toml", func(_, _, t []string) []string { return t }},
		{"custom.conf", func(j, _, _ []string) []string { return j }},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tt.path)
			got := tt.pick(j, y, tm)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.path, got[0])
		})
	}
}

func TestConfigCandidatePathsSearchDirs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG lookup is unix only")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	j, y, tm := ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(xdg, "annotationgen", "annotationgen.json"))
	assert.Contains(t, y, filepath.Join(xdg, "annotationgen", "config.yml"))
	assert.Contains(t, tm, filepath.Join("/etc", "annotationgen", "config.toml"))
}

func TestDefaultConfigDirFallsBackToHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix only")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "annotationgen"), dir)
}
