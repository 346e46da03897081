package types

import (
	"io/fs"
)

// FS abstracts the filesystem operations duplink performs so tests can
// substitute or fault-inject an implementation
type FS interface {
	// Read operations
	Open(name string) (fs.File, error)
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Mutating operations used during replacement
	Remove(name string) error
	Rename(oldpath, newpath string) error
}
