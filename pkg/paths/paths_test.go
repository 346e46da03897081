package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/duplink/pkg/errors"
)

func TestResolveRootMissing(t *testing.T) {
	_, err := ResolveRoot(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrRootMissing, errors.GetErrorCode(err))
}

func TestResolveRootNotDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := ResolveRoot(file)
	require.Error(t, err)
	assert.Equal(t, errors.ErrRootNotDir, errors.GetErrorCode(err))
}

func TestResolveRootEvaluatesSymlinks(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	resolved, err := ResolveRoot(link)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(real)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)
	assert.True(t, filepath.IsAbs(resolved))
}

func TestRelativeTarget(t *testing.T) {
	tests := []struct {
		name   string
		copy   string
		source string
		want   string
	}{
		{"same directory", "/root/b.txt", "/root/a.txt", "a.txt"},
		{"copy in subdirectory", "/root/sub/b.txt", "/root/a.txt", filepath.Join("..", "a.txt")},
		{"source in subdirectory", "/root/b.txt", "/root/sub/a.txt", filepath.Join("sub", "a.txt")},
		{"sibling directories", "/root/x/b.txt", "/root/y/a.txt", filepath.Join("..", "y", "a.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeTarget(tt.copy, tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelativeTargetResolvesBack(t *testing.T) {
	copy := "/data/photos/2024/dup.jpg"
	source := "/data/photos/orig.jpg"

	target, err := RelativeTarget(copy, source)
	require.NoError(t, err)

	resolved := filepath.Clean(filepath.Join(filepath.Dir(copy), target))
	assert.Equal(t, source, resolved)
}

func TestConfigFile(t *testing.T) {
	path := ConfigFile()
	assert.True(t, strings.HasSuffix(path, filepath.Join("duplink", "duplink.toml")), "got %s", path)
}
