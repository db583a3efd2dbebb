package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	assert.Equal(t, "1.2.3", normalizeVersion("v1.2.3"))
	assert.Equal(t, "1.2.3", normalizeVersion("1.2.3"))
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    int
	}{
		{"1.0.0", "1.0.1", -1},
		{"v1.0.0", "v2.0.0", -1},
		{"1.2.3", "1.2.3", 0},
		{"v1.2.3", "1.2.3", 0},
		{"2.0.0", "1.9.9", 1},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.current, tt.latest)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.current, tt.latest)
	}
}

func TestCompareVersions_Invalid(t *testing.T) {
	_, err := CompareVersions("dev", "1.0.0")
	assert.Error(t, err)

	_, err = CompareVersions("1.0.0", "not-a-version")
	assert.Error(t, err)
}
