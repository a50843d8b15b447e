package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_00-00-00.log", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2026-01-03_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-04_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
}

func TestSetupLogger_WritesToFileAndStdout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{
		Environment: config.EnvDev,
		LogLevel:    "info",
		LogFormat:   "json",
		LogDir:      dir,
		ServiceName: "chorequest",
		Version:     "test",
	}
	var stdout bytes.Buffer
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	f, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, filepath.Join(dir, "session_2026-03-04_05-06-07.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgStartingChoreQuest)

	contents, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(contents), LogMsgLoggingInitialized)
}
