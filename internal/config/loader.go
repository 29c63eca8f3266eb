package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

func loadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return Parse(cfg, data, filepath.Ext(path))
}

// Parse decodes a config file over cfg, so keys absent from data keep their
// current values. ext is the file extension (".json", ".yaml", ".yml") used
// as a format hint; empty means detect from content.
func Parse(cfg *Config, data []byte, ext string) error {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		// JSON objects start with '{'; anything else is treated as YAML.
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config json: %w", err)
		}
	case ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse config yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config extension %q", ext)
	}
	return nil
}
