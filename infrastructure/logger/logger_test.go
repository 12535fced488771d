package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLoggerEntries(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf)

	log.Info("starting")
	log.Warning("no results for: golang")
	log.Error("fetch failed", errors.New("boom"))

	var entries []LogData
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var e LogData
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}

	require.Len(t, entries, 3)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "WARNING", entries[1].Level)
	assert.Equal(t, "ERROR", entries[2].Level)
	assert.Equal(t, "boom", entries[2].Err)
	assert.Equal(t, "logger_test.go", entries[0].File)
	assert.Equal(t, "TestWriterLoggerEntries", entries[0].Function)
}

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := NewFileLogger(dir, "viral_topics")
	require.NoError(t, err)
	log.Info("hello")
	log.Close()

	// writing after close must not panic
	log.Info("dropped")

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.NotContains(t, string(data), "dropped")
}
