package display

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/duplink/pkg/types"
)

// Summary prints the end-of-run accounting for a live link run.
func Summary(w io.Writer, stats types.Stats) {
	info := pterm.Info.WithWriter(w)
	info.Printfln("%d files matched", stats.Matched)
	info.Printfln("%d unique contents", stats.Unique)
	info.Printfln("%d duplicate sources kept", stats.Sources)

	pterm.Success.WithWriter(w).Printfln("replaced %d redundant copies, reclaimed %s",
		stats.Copies, humanize.IBytes(uint64(stats.Reclaimable)))
}

// NothingToDo prints the acknowledgment for a run that found no
// duplicate groups.
func NothingToDo(w io.Writer, stats types.Stats) {
	info := pterm.Info.WithWriter(w)
	info.Printfln("%d files matched, all unique", stats.Matched)
	info.Printfln("nothing to dedupe")
}
