package types

// File identifies one regular file discovered by the scanner.
//
// A File starts unresolved: only the paths and size are known. The index
// resolution phase fills Digest exactly once; it is never recomputed, even
// if the underlying file changes during the run.
type File struct {
	// Path is the file's path relative to the scan root. It is stable
	// for the lifetime of the handle and is what reports print.
	Path string

	// AbsPath is the absolute path under the symlink-resolved scan root.
	// All filesystem operations use it.
	AbsPath string

	// Size is the file's length in bytes at scan time.
	Size int64

	// Digest is the hex-encoded content fingerprint. Empty until the
	// index resolution phase computes it.
	Digest string
}

// Resolved reports whether the file's digest has been computed
func (f File) Resolved() bool {
	return f.Digest != ""
}
