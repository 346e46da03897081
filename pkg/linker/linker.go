// Package linker replaces redundant copies with relative symlinks to
// their group's source, or reports what it would do in dry-run mode.
package linker

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/duplink/pkg/errors"
	"github.com/arthur-debert/duplink/pkg/logging"
	"github.com/arthur-debert/duplink/pkg/paths"
	"github.com/arthur-debert/duplink/pkg/types"
)

// BackupSuffix is appended to a copy's path while it is staged aside
// during replacement. A crash mid-replacement can leave such a file
// behind; it holds the copy's original content.
const BackupSuffix = ".duplink.bak"

// Replacement pairs one redundant copy with the relative link target
// that will point it at its group's source.
type Replacement struct {
	Copy   types.File
	Target string
}

// Plan computes the replacement for every copy in every group. The
// target is the source's path relative to the copy's containing
// directory; sources are fixed by the index and are never touched.
func Plan(groups []*types.Group) ([]Replacement, error) {
	var plan []Replacement
	for _, group := range groups {
		source := group.Source()
		for _, copy := range group.Copies() {
			target, err := paths.RelativeTarget(copy.AbsPath, source.AbsPath)
			if err != nil {
				return nil, err
			}
			plan = append(plan, Replacement{Copy: copy, Target: target})
		}
	}
	return plan, nil
}

// Report writes one `<copy> -> <target>` line per planned replacement.
// It never touches the filesystem; this is the whole of dry-run mode.
func Report(w io.Writer, plan []Replacement) {
	for _, r := range plan {
		fmt.Fprintf(w, "%s -> %s\n", r.Copy.Path, r.Target)
	}
}

// Apply executes the plan with a bounded worker pool. Replacements are
// independent of each other, so they run in any order; the first failure
// cancels the workers that have not started and surfaces, without
// rolling back replacements that already completed.
func Apply(ctx context.Context, fsys types.FS, plan []Replacement, workers int) error {
	logger := logging.GetLogger("linker")

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, r := range plan {
		r := r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return replace(fsys, r, logger)
		})
	}
	return g.Wait()
}

// replace swaps one copy for a symlink: stage the copy aside with a
// rename, create the link, verify it, then drop the staged original.
// The rename is undone if link creation fails, so the copy's content
// survives every failure short of a crash between the two steps.
func replace(fsys types.FS, r Replacement, logger zerolog.Logger) error {
	abs := r.Copy.AbsPath
	backup := abs + BackupSuffix

	if _, err := fsys.Lstat(backup); err == nil {
		return errors.Newf(errors.ErrReplaceFailed, "backup path %s already occupied", backup).
			WithDetail("copy", r.Copy.Path)
	}

	if err := fsys.Rename(abs, backup); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "cannot stage %s aside", r.Copy.Path)
	}

	if err := fsys.Symlink(r.Target, abs); err != nil {
		if rbErr := fsys.Rename(backup, abs); rbErr != nil {
			logger.Error().
				Err(rbErr).
				Str("backup", backup).
				Msg("Rollback failed, copy left at backup path")
			return errors.Wrapf(err, errors.ErrReplaceFailed,
				"cannot link %s and cannot restore it from %s", r.Copy.Path, backup)
		}
		return errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot link %s -> %s", r.Copy.Path, r.Target)
	}

	if got, err := fsys.Readlink(abs); err != nil || got != r.Target {
		return errors.Newf(errors.ErrReplaceFailed, "link verification failed for %s", r.Copy.Path).
			WithDetail("want", r.Target).
			WithDetail("got", got)
	}

	if err := fsys.Remove(backup); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "cannot remove backup %s", backup)
	}

	logger.Debug().
		Str("copy", r.Copy.Path).
		Str("target", r.Target).
		Msg("Replaced copy with link")

	return nil
}
