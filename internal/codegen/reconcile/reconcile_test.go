package reconcile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scratchDir points os.CreateTemp at a per-test directory so leftovers can be counted.
func scratchDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	return dir
}

func TestDirectModeWritesTargets(t *testing.T) {
	target := filepath.Join(t.TempDir(), "cpp", "ChangeModeForVehicleProperty.h")
	r := New(ModeDirect, discardLogger())

	require.NoError(t, r.Write(target, []byte("generated\n")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "generated\n", string(got))

	stale, err := r.Stale()
	require.NoError(t, err)
	assert.Empty(t, stale)
	assert.NoError(t, r.Close())
}

func TestCheckModeNeverTouchesTargets(t *testing.T) {
	tmp := scratchDir(t)
	target := filepath.Join(t.TempDir(), "Access.java")
	require.NoError(t, os.WriteFile(target, []byte("committed\n"), 0o644))

	r := New(ModeCheck, discardLogger())
	require.NoError(t, r.Write(target, []byte("generated\n")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "committed\n", string(got))

	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, r.Close())
	entries, err = os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch files must be removed")
}

func TestCloseAfterStaleError(t *testing.T) {
	tmp := scratchDir(t)
	dir := t.TempDir()
	ok := filepath.Join(dir, "Ok.h")
	unreadable := filepath.Join(dir, "Unreadable.h")
	require.NoError(t, os.WriteFile(ok, []byte("a\n"), 0o644))
	require.NoError(t, os.Mkdir(unreadable, 0o755))

	r := New(ModeCheck, discardLogger())
	require.NoError(t, r.Write(ok, []byte("a\n")))
	require.NoError(t, r.Write(unreadable, []byte("b\n")))

	_, err := r.Stale()
	require.Error(t, err)
	assert.Contains(t, err.Error(), unreadable)

	require.NoError(t, r.Close())
	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckModeDetectsDrift(t *testing.T) {
	scratchDir(t)
	dir := t.TempDir()
	same := filepath.Join(dir, "Same.h")
	changed := filepath.Join(dir, "Changed.h")
	missing := filepath.Join(dir, "Missing.h")
	require.NoError(t, os.WriteFile(same, []byte("a\nb\n"), 0o644))
	require.NoError(t, os.WriteFile(changed, []byte("a\nb\n"), 0o644))

	r := New(ModeCheck, discardLogger())
	defer r.Close()

	require.NoError(t, r.Write(same, []byte("a\nb\n")))
	require.NoError(t, r.Write(changed, []byte("a\nc\n")))
	require.NoError(t, r.Write(missing, []byte("x\n")))

	stale, err := r.Stale()
	require.NoError(t, err)
	require.Len(t, stale, 2)

	assert.Equal(t, changed, stale[0].Path)
	assert.False(t, stale[0].Missing)
	assert.Contains(t, stale[0].Diff, "-b")
	assert.Contains(t, stale[0].Diff, "+c")

	assert.Equal(t, missing, stale[1].Path)
	assert.True(t, stale[1].Missing)

	derr := &DriftError{Stale: stale}
	assert.Contains(t, derr.Error(), "2 generated file(s) require update")
	assert.Contains(t, derr.Error(), changed)
}

func TestCloseIsIdempotent(t *testing.T) {
	scratchDir(t)
	r := New(ModeCheck, discardLogger())
	require.NoError(t, r.Write(filepath.Join(t.TempDir(), "x.h"), []byte("x")))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "direct", ModeDirect.String())
	assert.Equal(t, "check", ModeCheck.String())
}

func TestUnifiedDiff(t *testing.T) {
	text, err := unifiedDiff("Access.java", []byte("a\nb\n"), []byte("a\nc\n"))
	require.NoError(t, err)
	assert.Contains(t, text, "--- Access.java")
	assert.Contains(t, text, "+++ Access.java (generated)")
	assert.Contains(t, text, "-b\n")
	assert.Contains(t, text, "+c\n")
}
