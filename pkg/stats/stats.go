// Package stats provides the concurrent run counters shared by digest
// workers.
package stats

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Counters accumulates work done during the resolution phase. All methods
// are safe for concurrent use.
type Counters struct {
	files *xsync.Counter
	bytes *xsync.Counter
}

// New returns zeroed counters.
func New() *Counters {
	return &Counters{
		files: xsync.NewCounter(),
		bytes: xsync.NewCounter(),
	}
}

// Record notes one fingerprinted file of the given size.
func (c *Counters) Record(size int64) {
	c.files.Inc()
	c.bytes.Add(size)
}

// Files returns the number of files fingerprinted so far.
func (c *Counters) Files() int64 {
	return c.files.Value()
}

// Bytes returns the total bytes read for fingerprinting so far.
func (c *Counters) Bytes() int64 {
	return c.bytes.Value()
}
