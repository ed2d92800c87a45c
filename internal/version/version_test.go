package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	defer func(c, b string) { GitCommit, BuildTime = c, b }(GitCommit, BuildTime)

	GitCommit, BuildTime = "unknown", "unknown"
	assert.Equal(t, "stringlift v"+Version, Short())

	GitCommit, BuildTime = "abc1234", "2026-10-19"
	assert.Equal(t, "stringlift v"+Version+" (abc1234, built 2026-10-19)", Short())
}
