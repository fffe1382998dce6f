package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, TRACE, ParseLevel("trace"))
	assert.Equal(t, DEBUG, ParseLevel(" Debug "))
	assert.Equal(t, WARN, ParseLevel("warning"))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel("что-то"), "неизвестный уровень даёт INFO")
}

func TestWriterLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("world", &buf, WARN)

	l.Info("не должно попасть")
	l.Warn("блок %d", 7)

	out := buf.String()
	assert.NotContains(t, out, "не должно попасть")
	assert.Contains(t, out, "[WARN] [world] блок 7")
}

func TestDefaultLogger_NilIsSilent(t *testing.T) {
	SetDefaultLogger(nil)
	assert.NotPanics(t, func() {
		Info("тишина")
		Trace("тишина")
	})
}

func TestNewLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger("sandbox", dir)
	require.NoError(t, err)

	l.Trace("trace в файл")
	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "sandbox_"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[TRACE] [sandbox] trace в файл")
}

func TestLoggerManager_ReusesLoggers(t *testing.T) {
	lm := NewLoggerManager("")
	a, err := lm.GetLogger("grid")
	require.NoError(t, err)
	b := lm.MustGetLogger("grid")
	assert.Same(t, a, b, "логгер компонента создаётся один раз")

	assert.Error(t, lm.SetLogLevel("unknown", INFO, INFO))
	assert.NoError(t, lm.SetLogLevel("grid", DEBUG, DEBUG))
	assert.NoError(t, lm.CloseAll())
}

func TestInitDefaultLoggerIn_WritesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitDefaultLoggerIn("sandbox", dir, ERROR))
	defer SetDefaultLogger(nil)

	Debug("запуск %d", 1)
	CloseDefaultLogger()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [sandbox] запуск 1", "в файл пишутся все уровни")
}
