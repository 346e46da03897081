// Package digest computes content fingerprints used to test file equality.
//
// Three algorithms are registered: sha256 (the default), blake3, and the
// non-cryptographic xxh64. All of them stream file content through the
// hash, so memory use is independent of file size.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"

	"github.com/arthur-debert/duplink/pkg/errors"
	"github.com/arthur-debert/duplink/pkg/types"
)

// Default is the algorithm used when no name is configured.
const Default = "sha256"

var algorithms = map[string]func() hash.Hash{
	"sha256": func() hash.Hash { return sha256.New() },
	"blake3": func() hash.Hash { return blake3.New() },
	"xxh64":  func() hash.Hash { return xxhash.New() },
}

// Algorithm is a named hash algorithm from the registry.
type Algorithm struct {
	name    string
	factory func() hash.Hash
}

// Lookup returns the algorithm registered under name. An empty name
// selects the default.
func Lookup(name string) (Algorithm, error) {
	if name == "" {
		name = Default
	}
	factory, ok := algorithms[name]
	if !ok {
		return Algorithm{}, errors.Newf(errors.ErrHashUnknown,
			"unknown hash algorithm %q (choose from: %v)", name, Names())
	}
	return Algorithm{name: name, factory: factory}, nil
}

// Names returns the registered algorithm names, sorted.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the algorithm's registry name.
func (a Algorithm) Name() string {
	return a.name
}

// File reads the file at path through fsys and returns the hex-encoded
// digest of its content.
func (a Algorithm) File(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot open %s", path)
	}
	defer func() {
		_ = file.Close()
	}()

	h := a.factory()
	if _, err := io.Copy(h, file); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
