package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRootCmd_PlainInterview(t *testing.T) {
	out := execute(t, "fix\nauth\nsim\nhandle token refresh\n-\n-\n", "--plain")

	assert.Contains(t, out, "Qual o tipo do commit?")
	assert.Contains(t, out, "```\nfix(auth)!: handle token refresh\n```")
}

func TestRootCmd_PlainInterviewWithButtonsAndRetry(t *testing.T) {
	// 3 selects "docs"; 2 selects "não"
	input := "3\n-\n2\nupdate readme\nclarify install steps\n42,abc\n42,43\n"
	out := execute(t, input, "--plain")

	assert.Contains(t, out, "Entrada inválida")
	assert.Contains(t, out, "docs: update readme\nclarify install steps\nrefs: 42, 43")
}

func TestRootCmd_TranscriptFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.yaml")
	execute(t, "feat\n-\nnão\nadd login\n-\n-\n", "--plain", "--transcript", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "feat: add login")
	assert.Contains(t, string(data), "step: done")
}

func TestRootCmd_AbortedInput(t *testing.T) {
	out := execute(t, "feat\n-\n", "--plain")
	assert.Contains(t, out, "É uma breaking change?")
	assert.NotContains(t, out, "```")
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("copy_on_finish: true\nplain: false\nlog_level: warn\n"), 0o600))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--copy=false", "--plain"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.False(t, cfg.CopyOnFinish)
	assert.True(t, cfg.Plain)
	assert.False(t, cfg.CommitOnFinish)
	if os.Getenv("DEBUG") == "" {
		assert.Equal(t, "warn", cfg.LogLevel)
	}
}

func TestLoadConfig_DebugFlag(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "x.yaml"), "--debug"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
