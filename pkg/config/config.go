// Package config loads duplink's layered configuration.
//
// Sources are merged lowest-precedence first: embedded defaults, the
// user's XDG config file, a config file at the scan root, then DUPLINK_*
// environment variables. Command-line flags are overlaid last by the CLI
// via Overlay.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/duplink/pkg/errors"
	"github.com/arthur-debert/duplink/pkg/paths"
)

// envPrefix namespaces the environment variables duplink reads.
const envPrefix = "DUPLINK_"

// Load builds the merged configuration for a run rooted at root. Pass an
// empty root to skip the root-local layer (genconfig does this).
func Load(root string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. User config under XDG config home, if present
	if userConfig := paths.ConfigFile(); fileExists(userConfig) {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", userConfig)
		}
	}

	// 3. Root-local config, first match wins
	if root != "" {
		for _, name := range []string{".duplink.toml", "duplink.toml"} {
			path := filepath.Join(root, name)
			if !fileExists(path) {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path)
			}
			break
		}
	}

	// 4. Environment: DUPLINK_SCAN_MIN_SIZE -> scan.min_size. Only the
	// first underscore separates section from key, so keys may contain
	// underscores themselves.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	return k, nil
}

// Overlay merges explicitly-set flag values over the loaded
// configuration. Keys use koanf's dotted form, e.g. "index.hash".
func Overlay(k *koanf.Koanf, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
