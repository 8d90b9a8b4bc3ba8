package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	log, err := New("", "debug")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(-1))
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "adpulse.log")
	log, err := New(path, "info")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("navigate")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"navigate"`)
	require.NotContains(t, string(data), "hidden")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.Error(t, err)
}
