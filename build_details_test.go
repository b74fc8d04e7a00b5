package oaspath

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestCommit(t *testing.T) {
	result := Commit()
	assert.NotEmpty(t, result)
	if result != "unknown" {
		assert.GreaterOrEqual(t, len(result), 7, "short hash expected, got: %s", result)
	}
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "oaspath/"+Version(), UserAgent())
	assert.NotContains(t, UserAgent(), " ")
}

func TestBuildInfo(t *testing.T) {
	result := BuildInfo()
	for _, want := range []string{"Version:", "Commit:", "Build Time:", "Go Version:", Version(), GoVersion()} {
		assert.Contains(t, result, want)
	}
}
