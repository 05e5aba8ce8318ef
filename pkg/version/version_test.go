package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "dev", GetBuildID())
	assert.Equal(t, "nmstatus dev (build: dev)", GetFullVersion())
}
