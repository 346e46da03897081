package config

import (
	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/duplink/pkg/errors"
)

// Settings is the typed view of the merged configuration.
type Settings struct {
	Scan struct {
		Patterns []string `koanf:"patterns" toml:"patterns"`
		Exclude  []string `koanf:"exclude" toml:"exclude"`
		MinSize  string   `koanf:"min_size" toml:"min_size"`
	} `koanf:"scan" toml:"scan"`

	Index struct {
		Hash    string `koanf:"hash" toml:"hash"`
		Workers int    `koanf:"workers" toml:"workers"`
	} `koanf:"index" toml:"index"`

	Output struct {
		Format string `koanf:"format" toml:"format"`
	} `koanf:"output" toml:"output"`
}

// Unmarshal extracts typed settings from the merged configuration.
func Unmarshal(k *koanf.Koanf) (Settings, error) {
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return s, errors.Wrap(err, errors.ErrConfigValid, "configuration does not match the expected shape")
	}
	return s, nil
}

// MinSizeBytes parses the human-readable scan.min_size value. Values
// like "0", "512", "4 KiB" and "10MB" are all accepted.
func (s Settings) MinSizeBytes() (int64, error) {
	if s.Scan.MinSize == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s.Scan.MinSize)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigValid, "invalid min_size %q", s.Scan.MinSize)
	}
	return int64(n), nil
}
