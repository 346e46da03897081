// Package paths centralizes path resolution for duplink.
//
// The scan root is resolved once, up front, to an absolute symlink-free
// location; every component works with paths derived from it instead of
// changing the process working directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/duplink/pkg/errors"
)

// ResolveRoot validates root and resolves it to an absolute path with all
// symlinks evaluated, so relative link targets computed later are
// unambiguous.
func ResolveRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrRootMissing, "root directory %s does not exist", root)
		}
		return "", errors.Wrapf(err, errors.ErrScanFailed, "cannot stat root %s", root)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrRootNotDir, "%s is not a directory", root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrScanFailed, "cannot resolve %s", root)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrScanFailed, "cannot resolve symlinks in %s", abs)
	}

	return resolved, nil
}

// RelativeTarget returns the source's path expressed relative to the
// copy's containing directory. This is the string written as the symlink
// target when the copy is replaced.
func RelativeTarget(copyAbs, sourceAbs string) (string, error) {
	target, err := filepath.Rel(filepath.Dir(copyAbs), sourceAbs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrReplaceFailed,
			"no relative path from %s to %s", copyAbs, sourceAbs)
	}
	return target, nil
}

// ConfigFile returns the user-level configuration file path under the XDG
// config directory.
func ConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "duplink", "duplink.toml")
}
