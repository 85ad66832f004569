package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full tool configuration.
type Config struct {
	Source     SourceConfig     `json:"source"`
	Convention ConventionConfig `json:"convention"`
	Reports    ReportsConfig    `json:"reports"`
}

// Load reads a YAML or JSON configuration file, applies CONPLAN_ environment
// overrides, fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("CONPLAN_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "conplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Source.SetDefaults()
	cfg.Convention.SetDefaults()
	cfg.Reports.SetDefaults()
	if err := cfg.Source.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Convention.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Reports.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
