package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/duplink/pkg/config"
	"github.com/arthur-debert/duplink/pkg/filesystem"
	"github.com/arthur-debert/duplink/pkg/index"
	"github.com/arthur-debert/duplink/pkg/logging"
	"github.com/arthur-debert/duplink/pkg/paths"
	"github.com/arthur-debert/duplink/pkg/scanner"
	"github.com/arthur-debert/duplink/pkg/stats"
	"github.com/arthur-debert/duplink/pkg/types"
)

// run carries the shared state of one scan-and-index pass.
type run struct {
	root     string
	fsys     types.FS
	idx      *index.Index
	settings config.Settings
}

// addMatchFlags registers the matching and indexing flags shared by the
// link and scan commands.
func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("pattern", "p", nil, "Glob pattern files must match (repeatable, OR-matched; default all files)")
	cmd.Flags().StringArray("exclude", nil, "Glob pattern pruned from the walk (repeatable)")
	cmd.Flags().String("min-size", "", `Skip files smaller than this size (e.g. "4 KiB")`)
	cmd.Flags().String("hash", "", "Digest algorithm: sha256, blake3, or xxh64")
	cmd.Flags().Int("workers", 0, "Concurrent workers (0 = one per CPU)")
}

// flagOverrides collects explicitly-set flags as config overrides, so
// flags beat config files and environment without duplicating defaults.
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()

	if flags.Changed("pattern") {
		patterns, _ := flags.GetStringArray("pattern")
		overrides["scan.patterns"] = patterns
	}
	if flags.Changed("exclude") {
		exclude, _ := flags.GetStringArray("exclude")
		overrides["scan.exclude"] = exclude
	}
	if flags.Changed("min-size") {
		minSize, _ := flags.GetString("min-size")
		overrides["scan.min_size"] = minSize
	}
	if flags.Changed("hash") {
		hash, _ := flags.GetString("hash")
		overrides["index.hash"] = hash
	}
	if flags.Changed("workers") {
		workers, _ := flags.GetInt("workers")
		overrides["index.workers"] = workers
	}

	return overrides
}

// prepareRun resolves the root, loads configuration, scans, and builds
// the duplicate index. Both link and scan start here.
func prepareRun(cmd *cobra.Command, rootArg string) (*run, error) {
	logger := logging.GetLogger("cli")

	root, err := paths.ResolveRoot(rootArg)
	if err != nil {
		return nil, err
	}

	k, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if err := config.Overlay(k, flagOverrides(cmd)); err != nil {
		return nil, err
	}
	settings, err := config.Unmarshal(k)
	if err != nil {
		return nil, err
	}
	minSize, err := settings.MinSizeBytes()
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	files, err := scanner.Scan(fsys, root, scanner.Options{
		Patterns: settings.Scan.Patterns,
		Exclude:  settings.Scan.Exclude,
		MinSize:  minSize,
	})
	if err != nil {
		return nil, err
	}

	counters := stats.New()
	idx, err := index.Build(cmd.Context(), fsys, files, index.Options{
		Hash:    settings.Index.Hash,
		Workers: settings.Index.Workers,
	}, counters)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("root", root).
		Int64("files_hashed", counters.Files()).
		Int64("bytes_read", counters.Bytes()).
		Int("duplicate_groups", len(idx.Groups)).
		Msg("Index ready")

	return &run{root: root, fsys: fsys, idx: idx, settings: settings}, nil
}
