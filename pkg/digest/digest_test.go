package digest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/duplink/pkg/errors"
	"github.com/arthur-debert/duplink/pkg/filesystem"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLookupDefault(t *testing.T) {
	algo, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "sha256", algo.Name())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("md5")
	require.Error(t, err)
	assert.Equal(t, errors.ErrHashUnknown, errors.GetErrorCode(err))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"blake3", "sha256", "xxh64"}, Names())
}

func TestFileKnownSHA256(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.txt", "hello")

	algo, err := Lookup("sha256")
	require.NoError(t, err)

	sum, err := algo.File(filesystem.NewOS(), path)
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)
}

func TestEqualContentEqualDigest(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.bin", "same bytes")
	b := writeFile(t, dir, "b.bin", "same bytes")
	c := writeFile(t, dir, "c.bin", "other bytes")

	fsys := filesystem.NewOS()
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			algo, err := Lookup(name)
			require.NoError(t, err)

			sumA, err := algo.File(fsys, a)
			require.NoError(t, err)
			sumB, err := algo.File(fsys, b)
			require.NoError(t, err)
			sumC, err := algo.File(fsys, c)
			require.NoError(t, err)

			assert.Equal(t, sumA, sumB, "identical content must share a digest")
			assert.NotEqual(t, sumA, sumC, "distinct content must not share a digest")
		})
	}
}

func TestFileMissing(t *testing.T) {
	algo, err := Lookup("sha256")
	require.NoError(t, err)

	_, err = algo.File(filesystem.NewOS(), filepath.Join(t.TempDir(), "gone.txt"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrFileRead, errors.GetErrorCode(err))
}
