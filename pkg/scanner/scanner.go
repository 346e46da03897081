// Package scanner enumerates the regular files under a scan root whose
// basenames match a set of shell glob patterns.
package scanner

import (
	"path/filepath"

	"github.com/arthur-debert/duplink/pkg/errors"
	"github.com/arthur-debert/duplink/pkg/logging"
	"github.com/arthur-debert/duplink/pkg/types"
)

// Options controls which files a scan yields.
type Options struct {
	// Patterns are basename globs, OR-matched. Empty means every file.
	Patterns []string

	// Exclude are basename globs pruned from the walk: matching
	// directories are not descended into and matching files are skipped.
	Exclude []string

	// MinSize skips files smaller than this many bytes.
	MinSize int64
}

// Scan walks root recursively and returns a handle for every regular file
// whose basename matches any pattern. root must already be resolved (see
// paths.ResolveRoot). Symlinks are never followed and never matched, so a
// linked directory cannot introduce cycles or double-counting. Directory
// entries are read in sorted order, which makes the result order
// deterministic for a given filesystem state; the first handle for a
// given content becomes that content's retained source downstream.
func Scan(fsys types.FS, root string, opts Options) ([]types.File, error) {
	logger := logging.GetLogger("scanner")

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}
	if err := validate(patterns); err != nil {
		return nil, err
	}
	if err := validate(opts.Exclude); err != nil {
		return nil, err
	}

	var files []types.File
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrScanFailed, "cannot read directory %s", dir)
		}

		for _, entry := range entries {
			name := entry.Name()
			if matchAny(opts.Exclude, name) {
				continue
			}

			if entry.IsDir() {
				if err := walk(filepath.Join(dir, name), filepath.Join(rel, name)); err != nil {
					return err
				}
				continue
			}
			// Symlinks and other specials are skipped entirely; a link
			// is never a traversable directory and never a candidate.
			if !entry.Type().IsRegular() {
				continue
			}
			if !matchAny(patterns, name) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				return errors.Wrapf(err, errors.ErrScanFailed, "cannot stat %s", filepath.Join(dir, name))
			}
			if info.Size() < opts.MinSize {
				continue
			}

			files = append(files, types.File{
				Path:    filepath.Join(rel, name),
				AbsPath: filepath.Join(dir, name),
				Size:    info.Size(),
			})
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Strs("patterns", patterns).
		Int("matched", len(files)).
		Msg("Scan complete")

	return files, nil
}

// validate rejects malformed globs up front so a bad pattern fails the
// run instead of silently matching nothing.
func validate(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return errors.Wrapf(err, errors.ErrPatternInvalid, "invalid glob pattern %q", pattern)
		}
	}
	return nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns are pre-validated, Match cannot fail here.
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
