package topics

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"patterns.md":        {Data: []byte("# Patterns\n\nGlob patterns match basenames.\n")},
		"caveats.txt":        {Data: []byte("Replacement is staged through a rename.\n")},
		"option-dry-run.md":  {Data: []byte("# Dry run\n\nPreview without mutating.\n")},
		"notes/ignored.html": {Data: []byte("<p>not a topic</p>")},
	}
}

func TestScanTopicsFiltersByExtension(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.scanTopics())

	names := tm.ListTopics()
	assert.ElementsMatch(t, []string{"patterns", "caveats", "option-dry-run"}, names)
}

func TestGetTopic(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("patterns")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Ext)
	assert.Contains(t, topic.Content, "Glob patterns")

	_, ok = tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestGetTopicFlagStyle(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("--dry-run")
	require.True(t, ok)
	assert.Equal(t, "option-dry-run", topic.Name)
}

func TestInitializeAddsHelpCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "duplink"}
	require.NoError(t, Initialize(rootCmd, testFS(), Options{}))

	var found bool
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			found = true
		}
	}
	assert.True(t, found, "help command should be registered")
}

func TestPlainRendererPassthrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "raw content", r.Render("raw content", ".md"))
}

func TestGlamourRendererIgnoresNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
