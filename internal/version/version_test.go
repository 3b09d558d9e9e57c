package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	savedVersion, savedTag := Version, GitTag
	defer func() {
		Version, GitTag = savedVersion, savedTag
	}()

	Version, GitTag = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	GitTag = "v1.2.0"
	require.Equal(t, "v1.2.0", AppVersion())

	Version = "1.2.1"
	require.Equal(t, "1.2.1", AppVersion())
}
