package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	defer func(v, c string) { Version, GitCommit = v, c }(Version, GitCommit)

	Version, GitCommit = "dev", "unknown"
	assert.Equal(t, "dev", GetFullVersion())

	Version, GitCommit = "1.2.0", "0123456789abcdef"
	assert.Equal(t, "1.2.0 (0123456)", GetFullVersion())
	assert.Equal(t, "1.2.0", GetVersion())
}
