package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lox.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "log_level: debug\ncolor: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.LogLevel = "debug"
	want.Color = false
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, logrus.DebugLevel, cfg.Level())
}

func TestLoadMissingFile(t *testing.T) {
	// An explicit file must exist
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")

	// The default file may be missing
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, DefaultFile), []byte("prompt: \"lox> \"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "lox> ", cfg.Prompt)
	require.Equal(t, filepath.Join(home, ".lox_history"), cfg.HistoryPath())
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: loud\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "log_level")

	path := writeConfig(t, "prompt: \"\"\n")
	_, err = Load(path)
	require.EqualError(t, err, "invalid config "+path+": prompt must not be empty")
}
