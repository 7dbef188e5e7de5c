package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Nexriel/DsoMiti/pkg/errors"
)

// GenerateConfigContent returns the default configuration with every
// value commented out, suitable for writing as a starting-point user
// config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// RenderEffective marshals a merged configuration back to TOML, for
// `dsomiti genconfig --effective`.
func RenderEffective(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return string(data), nil
}

// commentOutConfigValues comments out all assignment lines while
// keeping comments, blank lines and section headers intact.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	inArray := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Section headers ([game], [[copy_sets]]) stay as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Multi-line arrays: comment every line through the closing bracket
		if inArray {
			result = append(result, "# "+line)
			if strings.HasSuffix(trimmed, "]") {
				inArray = false
			}
			continue
		}
		if strings.Contains(trimmed, "= [") && !strings.HasSuffix(trimmed, "]") {
			inArray = true
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
