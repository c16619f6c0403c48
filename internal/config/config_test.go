package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: debug
copy_on_finish: true
commit_on_finish: true
plain: true
transcript: /tmp/chat.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:       "debug",
		CopyOnFinish:   true,
		CommitOnFinish: true,
		Plain:          true,
		Transcript:     "/tmp/chat.yaml",
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("log_level: [unterminated"), 0o600))
	_, err := Load(badYAML)
	require.Error(t, err)

	badLevel := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(badLevel, []byte("log_level: loud\n"), 0o600))
	_, err = Load(badLevel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestPath_FromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/commitchat.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/commitchat.yaml", p)
}
