package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxelsplace/redlevel/config"
	"github.com/voxelsplace/redlevel/level"
)

const testLayout = `
name = "red-level"

[[field]]
kind = "magic"
value = "RED1"

[[field]]
kind = "string"
name = "title"

[[field]]
kind = "colors"
name = "sky"
`

func setup(t *testing.T) (config.Config, string) {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.LevelDir = filepath.Join(root, "levels")
	cfg.BackupDir = filepath.Join(root, "levels", "backup")
	cfg.Layout = filepath.Join(root, "layout.toml")
	require.NoError(t, os.WriteFile(cfg.Layout, []byte(testLayout), 0o644))
	require.NoError(t, os.MkdirAll(cfg.LevelDir, 0o755))

	raw := []byte{'R', 'E', 'D', '1', 5, 'H', 'i', 'l', 'l', 's', 2, 135, 206, 235, 255, 255, 255}
	levelPath := filepath.Join(cfg.LevelDir, "hills.lvl")
	require.NoError(t, os.WriteFile(levelPath, raw, 0o644))
	return cfg, levelPath
}

func TestRunInspect(t *testing.T) {
	cfg, levelPath := setup(t)
	var out bytes.Buffer
	require.NoError(t, RunInspect(cfg, levelPath, &out))

	s := out.String()
	assert.Contains(t, s, "hills.lvl")
	assert.Contains(t, s, `"Hills"`)
	assert.Contains(t, s, "#87ceeb")
	assert.Contains(t, s, "#ffffff")
}

func TestRunInspectErrors(t *testing.T) {
	cfg, levelPath := setup(t)

	require.NoError(t, os.WriteFile(levelPath, []byte("RED2"), 0o644))
	err := RunInspect(cfg, levelPath, &bytes.Buffer{})
	assert.True(t, errors.Is(err, level.ErrFormat))

	cfg.MaxFileSize = 2
	err = RunInspect(cfg, levelPath, &bytes.Buffer{})
	assert.True(t, errors.Is(err, level.ErrTooLarge))

	cfg.Layout = filepath.Join(t.TempDir(), "missing.toml")
	assert.Error(t, RunInspect(cfg, levelPath, &bytes.Buffer{}))
}

func TestRunList(t *testing.T) {
	cfg, _ := setup(t)
	var out bytes.Buffer
	require.NoError(t, RunList(cfg, &out))
	assert.Equal(t, "hills.lvl\n", out.String())

	cfg.LevelDir = filepath.Join(t.TempDir(), "fresh")
	out.Reset()
	require.NoError(t, RunList(cfg, &out))
	assert.Empty(t, out.String())
}

func TestRunPalette(t *testing.T) {
	cfg, levelPath := setup(t)
	var out bytes.Buffer
	require.NoError(t, RunPalette(cfg, levelPath, "sky", &out))
	assert.Contains(t, out.String(), "sky (2)")
	assert.Error(t, RunPalette(cfg, levelPath, "title", &out))
}

func TestRunPalette2GLB(t *testing.T) {
	cfg, levelPath := setup(t)
	outPath := filepath.Join(t.TempDir(), "sky.glb")
	require.NoError(t, RunPalette2GLB(cfg, levelPath, "sky", outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "glTF", string(data[:4]))
}

func TestRunBackupAndRestore(t *testing.T) {
	cfg, levelPath := setup(t)
	original, err := os.ReadFile(levelPath)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RunBackup(cfg, []string{levelPath}, &out))
	backupPath := strings.TrimSpace(out.String())
	assert.FileExists(t, backupPath)

	out.Reset()
	require.NoError(t, RunListBackups(cfg, levelPath, &out))
	assert.Equal(t, backupPath, strings.TrimSpace(out.String()))

	restored := filepath.Join(t.TempDir(), "hills.lvl")
	require.NoError(t, RunRestore(cfg, backupPath, restored))
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, original, got)

	assert.Error(t, RunBackup(cfg, nil, &out))
}
