package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipjournal/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range config.Names {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeTempFile(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestExecute(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	journal := writeTempFile(t, dir, "journal.log", []string{
		"192.168.0.1:2022-04-08 12:30:00",
		"10.0.0.1:2022-04-08 13:45:00",
		"192.168.0.1:2022-04-08 14:00:00",
	})

	var out bytes.Buffer
	code := newApp(&out).execute([]string{
		"--no-color",
		"--config", filepath.Join(dir, "absent.ini"),
		"--file-log", journal,
		"--file-output", dir,
		"--time-start", "2022-04-08",
		"--time-end", "2022-04-09",
	})

	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Parsed arguments successfully")
	assert.Contains(t, out.String(), "File successfully saved")
	assert.NotContains(t, out.String(), "\033[")

	data, err := os.ReadFile(filepath.Join(dir, "result.txt"))
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1 -> 2\n10.0.0.1 -> 1\n", string(data))
}

func TestExecuteFromConfigFileAndEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	journal := writeTempFile(t, dir, "journal.log", []string{
		"192.168.0.1:2022-04-08 12:30:00",
		"10.0.0.1:2022-04-08 13:45:00",
	})
	ini := writeTempFile(t, dir, "ipjournal.ini", []string{
		"file-log = " + journal,
		"file-output = " + dir,
		"time-start = 2022-04-08",
		"time-end = 2022-04-09",
		"log-file = " + filepath.Join(dir, "ipjournal.log"),
	})
	t.Setenv(config.AddressStart, "192.0.0.0")

	var out bytes.Buffer
	code := newApp(&out).execute([]string{"--no-color", "--config", ini})
	require.Equal(t, 0, code, out.String())

	data, err := os.ReadFile(filepath.Join(dir, "result.txt"))
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1 -> 1\n", string(data))

	logData, err := os.ReadFile(filepath.Join(dir, "ipjournal.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "[success] File successfully saved")
}

func TestExecuteMissingArgument(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	var out bytes.Buffer
	code := newApp(&out).execute([]string{
		"--config", filepath.Join(dir, "absent.ini"),
		"--file-log", "/var/log/journal.log",
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "\033[31margument 'file-output' was not supplied\033[0m")
	assert.NoFileExists(t, filepath.Join(dir, "result.txt"))
}

func TestExecuteMissingJournal(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	var out bytes.Buffer
	code := newApp(&out).execute([]string{
		"--no-color",
		"--config", filepath.Join(dir, "absent.ini"),
		"--file-log", filepath.Join(dir, "absent.log"),
		"--file-output", dir,
		"--time-start", "2022-04-08",
		"--time-end", "2022-04-09",
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "does not exist")
}

func TestExecuteUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	code := newApp(&out).execute([]string{"--no-such-flag"})
	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "no-such-flag")
}
