package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the config to a YAML file with a descriptive header.
func WriteYAML(cfg *Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath, cfg.APIKey == ""))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func generateHeader(outputPath string, keyFromEnv bool) string {
	var env string
	if keyFromEnv {
		env = fmt.Sprintf(`#
# Required environment variable:
#   %s - API key for the access-control service
#
# Usage:
#   export %s=<your-key>
#   tgprov apply -c %s
`, EnvAPIKey, EnvAPIKey, outputPath)
	} else {
		env = fmt.Sprintf(`#
# Usage:
#   tgprov apply -c %s
`, outputPath)
	}
	return fmt.Sprintf(`# tgprov configuration
# Generated by: tgprov init
# Generated at: %s
%s`, time.Now().Format(time.RFC3339), env)
}
