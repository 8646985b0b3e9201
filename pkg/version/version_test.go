package version

import (
	"encoding/json"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setVersion installs ldflags-style build values for the test
func setVersion(t *testing.T) {
	origV, origB, origC := Version, BuildTime, Commit
	t.Cleanup(func() { Version, BuildTime, Commit = origV, origB, origC })

	Version = "1.2.3"
	BuildTime = "2026-10-19T00:00:00Z"
	Commit = "deadbeef"
}

func TestGet_LinkerValues(t *testing.T) {
	setVersion(t)

	info := Get()
	assert.Equal(t, "contentpack", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "2026-10-19T00:00:00Z", info.BuildTime)
	assert.Equal(t, "deadbeef", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")

	assert.Equal(t, "1.2.3", Short())
	assert.Contains(t, Full(), "contentpack 1.2.3 (commit: deadbeef")
}

func TestInfo_Fill(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/quantmind-br/contentpack", Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-18T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	t.Run("defaults are replaced", func(t *testing.T) {
		info := Info{Name: Name, Version: "dev", BuildTime: "unknown", Commit: "unknown"}
		info.fill(bi)

		assert.Equal(t, "v0.4.0", info.Version)
		assert.Equal(t, "0123456789ab", info.Commit)
		assert.Equal(t, "2026-10-18T12:00:00Z", info.BuildTime)
		assert.True(t, info.Modified)
		assert.Contains(t, info.String(), "(commit: 0123456789ab-dirty, built: 2026-10-18T12:00:00Z")
	})

	t.Run("linker values win", func(t *testing.T) {
		info := Info{Version: "1.2.3", BuildTime: "then", Commit: "deadbeef"}
		info.fill(bi)

		assert.Equal(t, "1.2.3", info.Version)
		assert.Equal(t, "deadbeef", info.Commit)
		assert.Equal(t, "then", info.BuildTime)
	})

	t.Run("devel module version is ignored", func(t *testing.T) {
		info := Info{Version: "dev"}
		info.fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
		assert.Equal(t, "dev", info.Version)
	})
}

func TestShortRevision(t *testing.T) {
	assert.Equal(t, "abc", shortRevision("abc"))
	assert.Equal(t, "0123456789ab", shortRevision("0123456789abcdef"))
}

func TestInfo_JSON(t *testing.T) {
	setVersion(t)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(Get().JSON()), &decoded))

	assert.Equal(t, "contentpack", decoded["name"])
	assert.Equal(t, "1.2.3", decoded["version"])
	assert.Equal(t, "deadbeef", decoded["commit"])
	assert.Equal(t, "2026-10-19T00:00:00Z", decoded["build_time"])
	assert.Contains(t, decoded, "platform")
}
