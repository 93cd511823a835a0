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

func corpusDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"python.txt": "Python is a programming language.\nPython 3.0 was released in 2008. Guido van Rossum created it.",
		"go.txt":     "Go is a programming language designed at Google. Go has goroutines.",
	}
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"QUESTIONS_FILE_MATCHES", "QUESTIONS_SENTENCE_MATCHES", "QUESTIONS_LANGUAGE", "QUESTIONS_LOG_LEVEL", "QUESTIONS_LOG_FORMAT", "QUESTIONS_CONCURRENCY"} {
		t.Setenv(k, "")
	}
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryFlag(t *testing.T) {
	out, err := execute(t, "", corpusDir(t), "-q", "When was Python 3.0 released?")
	require.NoError(t, err)
	assert.Equal(t, "Python 3.0 was released in 2008.\n", out)
}

func TestPlainPrompt(t *testing.T) {
	out, err := execute(t, "who created python\n", corpusDir(t), "--plain", "--sentences", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "Query: "), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Guido van Rossum created it.", lines[0])
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "", corpusDir(t), "--files", "0", "-q", "python")
	require.Error(t, err)

	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing"), "-q", "python")
	require.Error(t, err)

	_, err = execute(t, "")
	require.Error(t, err)
}
