package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runCLI runs the command with a config file that does not exist so the
// user's configuration is never read.
func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newCommand(strings.NewReader(stdin), &stdout, &stderr)
	argv := append([]string{"textbuf", "--config", filepath.Join(t.TempDir(), "none.toml")}, args...)
	err := cmd.Run(context.Background(), argv)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCommand(t *testing.T) {
	script := writeFile(t, "s.lua", `
		local b = textbuf.new("a,b,,c")
		for i, tok in ipairs(b:tokens({delim = ",", ignore_empty = false})) do
			print(i, tok)
		end
	`)

	res := runCLI(t, "", "run", script)
	require.NoError(t, res.err)
	assert.Equal(t, "1\ta\n2\tb\n3\t\n4\tc\n", res.stdout)
}

func TestRunCommandRequiresScript(t *testing.T) {
	res := runCLI(t, "", "run")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "usage: textbuf run")
}

func TestRunCommandScriptError(t *testing.T) {
	script := writeFile(t, "s.lua", `textbuf.new("x"):delete(3, 1)`)

	res := runCLI(t, "", "run", script)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "delete")
}

func TestStatsCommandStdin(t *testing.T) {
	res := runCLI(t, "hello world\n", "stats")
	require.NoError(t, res.err)

	assert.True(t, gjson.Valid(res.stdout), "invalid JSON: %s", res.stdout)
	assert.Equal(t, int64(12), gjson.Get(res.stdout, "length").Int())
	assert.Equal(t, int64(1), gjson.Get(res.stdout, "lines").Int())
	assert.Equal(t, int64(2), gjson.Get(res.stdout, "words").Int())
}

func TestStatsCommandFile(t *testing.T) {
	path := writeFile(t, "in.txt", "a\n\nb\n")

	res := runCLI(t, "", "stats", "--indent", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "\n  \"blank\": 1")
	assert.Equal(t, int64(3), gjson.Get(res.stdout, "lines").Int())
}

func TestStatsCommandMissingFile(t *testing.T) {
	res := runCLI(t, "", "stats", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, res.err)
}

func TestTokensCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"whitespace", "a b  c", nil, "a\nb\nc\n"},
		{"delimiter", "a;b;c", []string{"--delim", ";"}, "a\nb\nc\n"},
		{"quote and trim", "x, \"y, z\" ", []string{"--delim", ",", "--quote", "\"", "--trim"}, "x\ny, z\n"},
		{"keep empty", "a,,b", []string{"--delim", ",", "--keep-empty"}, "a\n\nb\n"},
		{"stdin dash", "p q", []string{"-"}, "p\nq\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.stdin, append([]string{"tokens"}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestTokensCommandBadFlags(t *testing.T) {
	res := runCLI(t, "a", "tokens", "--quote", "ab")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--quote")

	res = runCLI(t, "a", "tokens", "--delim", "")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "--delim")
}

func TestGlobalFlags(t *testing.T) {
	cfg := writeFile(t, "c.toml", "[tokenizer]\ndelimiter = \"|\"\n")

	var stdout, stderr bytes.Buffer
	cmd := newCommand(strings.NewReader("a|b"), &stdout, &stderr)
	err := cmd.Run(context.Background(), []string{
		"textbuf", "--config", cfg, "--log-level", "debug", "--no-color", "tokens",
	})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", stdout.String())
	assert.Contains(t, stderr.String(), "[DEBUG]")
	assert.Contains(t, stderr.String(), "run=")
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeFile(t, "c.toml", "[logging]\nlevel = \"loud\"\n")

	var stdout, stderr bytes.Buffer
	cmd := newCommand(strings.NewReader(""), &stdout, &stderr)
	err := cmd.Run(context.Background(), []string{"textbuf", "--config", cfg, "stats"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}
