package teletext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	var v = Version()
	assert.Contains(t, v, "go-teletext")
	// No release string is linked in during tests.
	assert.Contains(t, v, "unreleased")
}
