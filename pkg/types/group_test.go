package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupSourceAndCopies(t *testing.T) {
	group := &Group{
		Digest: "abc123",
		Files: []File{
			{Path: "a.txt", Size: 5},
			{Path: "sub/b.txt", Size: 5},
			{Path: "c.txt", Size: 5},
		},
	}

	assert.Equal(t, "a.txt", group.Source().Path, "first discovered member is the source")
	assert.Len(t, group.Copies(), 2)
	assert.Equal(t, "sub/b.txt", group.Copies()[0].Path)
	assert.Equal(t, int64(10), group.Redundant())
}

func TestFileResolved(t *testing.T) {
	f := File{Path: "a.txt"}
	assert.False(t, f.Resolved())

	f.Digest = "deadbeef"
	assert.True(t, f.Resolved())
}
