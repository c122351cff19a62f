package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abcdef1", shortCommit("abcdef1234567890", false))
	assert.Equal(t, "abcdef1-dirty", shortCommit("abcdef1234567890", true))
	assert.Equal(t, "abc", shortCommit("abc", false))
}

func TestFromBuildInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "", ""
	fromBuildInfo(&debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2024-05-06T07:08:09Z"},
	}}, true)

	assert.Equal(t, "0123456-dirty", Commit)
	assert.Equal(t, "dev-20240506", Version)
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.2.3", "feedbee"
	fromBuildInfo(&debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
	}}, true)

	assert.Equal(t, "v1.2.3", Version)
	assert.Equal(t, "feedbee", Commit)
	assert.Equal(t, "contact-form v1.2.3 (commit: feedbee)", Line("contact-form"))
}

func TestFromBuildInfoUnavailable(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "", ""
	fromBuildInfo(nil, false)
	assert.Empty(t, Version)
	assert.Empty(t, Commit)
}
