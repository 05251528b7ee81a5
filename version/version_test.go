package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {

	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	info := GetInfo()
	require.Equal(t, "v1.2.3", info.Version)
	require.Equal(t, runtime.Version(), info.GoVersion)
	require.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {

	info := Info{
		Version:   "v1.2.3",
		GitCommit: "abc123",
		BuildDate: "2026-10-16",
		GoVersion: "go1.16",
		Platform:  "linux/amd64",
	}

	require.Equal(t,
		"Version: v1.2.3\nGit Commit: abc123\nBuild Date: 2026-10-16\nGo Version: go1.16\nPlatform: linux/amd64",
		info.String(),
	)
}
