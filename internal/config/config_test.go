package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse(nil)
	assert.NoError(t, err)
	assert.False(t, opts.Simplify)
	assert.False(t, opts.PrintFormula)
	assert.Equal(t, 0, opts.Verbosity)
	assert.Equal(t, 0, opts.TimeoutSecs)
	assert.Equal(t, "", opts.InputPath)
}

func TestParseFlags(t *testing.T) {
	opts, err := Parse([]string{"--simplify", "--print-formula", "-v", "-v"})
	assert.NoError(t, err)
	assert.True(t, opts.Simplify)
	assert.True(t, opts.PrintFormula)
	assert.Equal(t, 2, opts.Verbosity)
}

func TestParseHelp(t *testing.T) {
	opts, err := Parse([]string{"-h"})
	assert.NoError(t, err)
	assert.True(t, opts.Help)
}

func TestParseRejectsUnknownFlag(t *testing.T) {
	_, err := Parse([]string{"--nonsense"})
	assert.Error(t, err)
}

func TestParseRejectsZeroTimeout(t *testing.T) {
	_, err := Parse([]string{"0"})
	assert.Error(t, err)
}

func TestParseAcceptsTimeoutAndPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.qdimacs")
	assert.NoError(t, os.WriteFile(path, []byte("p cnf 0 0\n"), 0o644))

	opts, err := Parse([]string{"30", path})
	assert.NoError(t, err)
	assert.Equal(t, 30, opts.TimeoutSecs)
	assert.Equal(t, path, opts.InputPath)
}

func TestParseRejectsDirectoryInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Parse([]string{dir})
	assert.Error(t, err)
}

func TestParseRejectsUnreadableInput(t *testing.T) {
	_, err := Parse([]string{"/nonexistent/path/to/nowhere.qdimacs"})
	assert.Error(t, err)
}

func TestParseRejectsDuplicateTimeout(t *testing.T) {
	_, err := Parse([]string{"5", "6"})
	assert.Error(t, err)
}
