package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlinkTo fails the test unless path is a symbolic link whose
// target is exactly want.
func AssertSymlinkTo(t *testing.T, path, want string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected %s to exist", path)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "expected %s to be a symlink", path)

	target, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, want, target, "symlink %s points to the wrong target", path)
}

// AssertFileContent fails the test unless reading path (following
// symlinks) yields want.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "expected to read %s", path)
	assert.Equal(t, want, string(content), "wrong content at %s", path)
}

// AssertRegularFile fails the test unless path is a regular file, not a
// symlink or directory.
func AssertRegularFile(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected %s to exist", path)
	assert.True(t, info.Mode().IsRegular(), "expected %s to be a regular file, mode %v", path, info.Mode())
}
