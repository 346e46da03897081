package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/duplink/pkg/errors"
)

// GenerateContent returns the default configuration with every value
// commented out, suitable for writing as a starting .duplink.toml.
func GenerateContent() string {
	return commentOutValues(DefaultContent())
}

// EffectiveContent marshals the resolved settings back to TOML, so users
// can capture the configuration a run actually used.
func EffectiveContent(s Settings) (string, error) {
	data, err := gotoml.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal settings")
	}
	return string(data), nil
}

// commentOutValues comments every assignment line while keeping blank
// lines, existing comments, and section headers as they are.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
