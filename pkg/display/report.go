package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/duplink/pkg/errors"
	"github.com/arthur-debert/duplink/pkg/types"
)

// ReportGroup is one duplicate group in report form: the source that
// would be retained, and the copies that would become links.
type ReportGroup struct {
	Digest string   `json:"digest" yaml:"digest"`
	Size   int64    `json:"size" yaml:"size"`
	Source string   `json:"source" yaml:"source"`
	Copies []string `json:"copies" yaml:"copies"`
}

// Report is the full duplicate report for one scan.
type Report struct {
	Root   string        `json:"root" yaml:"root"`
	Groups []ReportGroup `json:"groups" yaml:"groups"`
	Stats  types.Stats   `json:"stats" yaml:"stats"`
}

// NewReport converts an index's groups into report form.
func NewReport(root string, groups []*types.Group, stats types.Stats) *Report {
	report := &Report{Root: root, Stats: stats}
	for _, group := range groups {
		rg := ReportGroup{
			Digest: group.Digest,
			Size:   group.Source().Size,
			Source: group.Source().Path,
		}
		for _, copy := range group.Copies() {
			rg.Copies = append(rg.Copies, copy.Path)
		}
		report.Groups = append(report.Groups, rg)
	}
	return report
}

// Render writes the report in the given format. FormatAuto must be
// resolved by the caller (see DetectFormat) before rendering.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(r); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON report")
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML report")
		}
		_, err = w.Write(data)
		return err
	case FormatTerm:
		r.renderTerm(w)
		return nil
	case FormatText, FormatAuto:
		r.renderText(w)
		return nil
	default:
		return errors.Newf(errors.ErrInvalidInput, "cannot render format %s", format)
	}
}

func (r *Report) renderText(w io.Writer) {
	if len(r.Groups) == 0 {
		fmt.Fprintf(w, "no duplicates in %s (%d files matched)\n", r.Root, r.Stats.Matched)
		return
	}

	for _, group := range r.Groups {
		fmt.Fprintf(w, "%s (%s, %d copies)\n", shortDigest(group.Digest), humanize.IBytes(uint64(group.Size)), len(group.Copies))
		fmt.Fprintf(w, "  * %s\n", group.Source)
		for _, copy := range group.Copies {
			fmt.Fprintf(w, "    %s\n", copy)
		}
	}
	fmt.Fprintf(w, "%d matched, %d duplicate groups, %d redundant copies, %s reclaimable\n",
		r.Stats.Matched, r.Stats.Sources, r.Stats.Copies, humanize.IBytes(uint64(r.Stats.Reclaimable)))
}

func (r *Report) renderTerm(w io.Writer) {
	header := getStyle("Header")
	digestStyle := getStyle("Digest")
	sourceStyle := getStyle("Source")
	copyStyle := getStyle("Copy")
	muted := getStyle("Muted")
	count := getStyle("Count")

	if len(r.Groups) == 0 {
		fmt.Fprintln(w, muted.Render(fmt.Sprintf("no duplicates in %s (%d files matched)", r.Root, r.Stats.Matched)))
		return
	}

	fmt.Fprintln(w, header.Render(fmt.Sprintf("Duplicates in %s", r.Root)))
	for _, group := range r.Groups {
		fmt.Fprintf(w, "%s %s\n",
			digestStyle.Render(shortDigest(group.Digest)),
			muted.Render(fmt.Sprintf("(%s, %d copies)", humanize.IBytes(uint64(group.Size)), len(group.Copies))))
		fmt.Fprintf(w, "  %s\n", sourceStyle.Render(group.Source))
		for _, copy := range group.Copies {
			fmt.Fprintln(w, copyStyle.Render(copy))
		}
	}
	fmt.Fprintf(w, "%s matched, %s duplicate groups, %s redundant copies, %s reclaimable\n",
		count.Render(fmt.Sprintf("%d", r.Stats.Matched)),
		count.Render(fmt.Sprintf("%d", r.Stats.Sources)),
		count.Render(fmt.Sprintf("%d", r.Stats.Copies)),
		count.Render(humanize.IBytes(uint64(r.Stats.Reclaimable))))
}

// shortDigest trims a long hex digest for display; reports in json and
// yaml carry the full value.
func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
