package util

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupLogsWithFile(t *testing.T) {

	logFile := filepath.Join(t.TempDir(), "nested", "ipify.log")

	require.NoError(t, SetupLogs(logFile, false))
	defer zap.ReplaceGlobals(zap.NewNop())

	zap.S().Debugf("lookup ipv%s address", "4")
	_ = zap.L().Sync()

	require.FileExists(t, logFile)
	content, err := ioutil.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "lookup ipv4 address")
	require.Contains(t, string(content), "DEBUG")
}

func TestSetupLogsConsoleOnly(t *testing.T) {

	require.NoError(t, SetupLogs("", true))
	defer zap.ReplaceGlobals(zap.NewNop())

	require.True(t, zap.L().Core().Enabled(zap.DebugLevel))
}

func TestSetupLogsConsoleQuietByDefault(t *testing.T) {

	require.NoError(t, SetupLogs("", false))
	defer zap.ReplaceGlobals(zap.NewNop())

	require.False(t, zap.L().Core().Enabled(zap.InfoLevel))
	require.True(t, zap.L().Core().Enabled(zap.WarnLevel))
}
