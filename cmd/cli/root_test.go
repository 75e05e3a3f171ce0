package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportFileName(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	assert.Equal(t, "schedule-20240305-140709.txt", reportFileName(now))
}

func TestRunCommand(t *testing.T) {
	//** Arrange
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("08:00AM-09:00AM\nnot a range\n\n08:30AM-09:30AM\n"), 0o644))
	outDir := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	command := newRootCommand()
	command.SetOut(&stdout)
	command.SetErr(&stderr)
	command.SetArgs([]string{"run", "--config", filepath.Join(dir, "absent.yaml"), "--file", input, "--out-dir", outDir, "--seed", "7"})

	//** Act
	err := command.Execute()

	//** Assert
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Total offerings: 42")
	assert.Contains(t, stdout.String(), "Schedule sets (surviving merge):")

	files, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	written, err := os.ReadFile(filepath.Join(outDir, files[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, stdout.String(), string(written))
}

func TestRunCommandRequiresFile(t *testing.T) {
	command := newRootCommand()
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"run"})

	assert.Error(t, command.Execute())
}
