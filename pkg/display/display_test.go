package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/duplink/pkg/types"
)

func sampleReport() *Report {
	groups := []*types.Group{
		{
			Digest: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
			Files: []types.File{
				{Path: "a.txt", Size: 5, Digest: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
				{Path: "b.txt", Size: 5, Digest: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
			},
		},
	}
	stats := types.Stats{Matched: 3, Unique: 2, Sources: 1, Copies: 1, Reclaimable: 5}
	return NewReport("/data", groups, stats)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"auto", FormatAuto, true},
		{"", FormatAuto, true},
		{"term", FormatTerm, true},
		{"terminal", FormatTerm, true},
		{"text", FormatText, true},
		{"plain", FormatText, true},
		{"json", FormatJSON, true},
		{"YAML", FormatYAML, true},
		{"xml", FormatAuto, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerm, FormatText, FormatJSON, FormatYAML} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestNewReport(t *testing.T) {
	report := sampleReport()

	require.Len(t, report.Groups, 1)
	assert.Equal(t, "a.txt", report.Groups[0].Source)
	assert.Equal(t, []string{"b.txt"}, report.Groups[0].Copies)
	assert.Equal(t, int64(5), report.Groups[0].Size)
	assert.Equal(t, "/data", report.Root)
}

func TestRenderJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Render(&buf, FormatJSON))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/data", decoded.Root)
	assert.Equal(t, 1, decoded.Stats.Sources)
	require.Len(t, decoded.Groups, 1)
	assert.Equal(t, "a.txt", decoded.Groups[0].Source)
}

func TestRenderYAMLRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Render(&buf, FormatYAML))

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.Stats.Matched)
	require.Len(t, decoded.Groups, 1)
	assert.Equal(t, []string{"b.txt"}, decoded.Groups[0].Copies)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Render(&buf, FormatText))

	out := buf.String()
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
	assert.Contains(t, out, "1 duplicate groups")
	assert.Contains(t, out, "2cf24dba5fb0", "digest is shortened for display")
	assert.NotContains(t, out, "2cf24dba5fb0a30e", "full digest stays out of text output")
}

func TestRenderTextNoDuplicates(t *testing.T) {
	report := NewReport("/data", nil, types.Stats{Matched: 4, Unique: 4})

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, FormatText))
	assert.Contains(t, buf.String(), "no duplicates")
}

func TestRenderTermIncludesAllPaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Render(&buf, FormatTerm))

	out := buf.String()
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.txt")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, types.Stats{Matched: 2, Unique: 1, Sources: 1, Copies: 1, Reclaimable: 5})

	out := buf.String()
	assert.Contains(t, out, "2 files matched")
	assert.Contains(t, out, "1 unique contents")
	assert.Contains(t, out, "replaced 1 redundant copies")
}

func TestNothingToDo(t *testing.T) {
	var buf bytes.Buffer
	NothingToDo(&buf, types.Stats{Matched: 3, Unique: 3})

	assert.Contains(t, buf.String(), "nothing to dedupe")
}

func TestStylesLoaded(t *testing.T) {
	// The embedded styles.yaml must parse and register the names the
	// renderer uses.
	require.NoError(t, loadStyles(embeddedStyles))
	for _, name := range []string{"Header", "Digest", "Source", "Copy", "Muted", "Count"} {
		_, ok := styleRegistry[name]
		assert.True(t, ok, "style %s missing from styles.yaml", name)
	}
}

func TestRenderStrings(t *testing.T) {
	out := getStyle("Source").Render("a.txt")
	assert.True(t, strings.Contains(out, "a.txt"))
}
