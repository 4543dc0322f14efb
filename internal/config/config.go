// Package config loads optional tool settings from a TOML file. Flags win
// over file values; file values win over defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/firmtrace/tracedump/internal/wire"
)

// Config holds the resolved tool settings.
type Config struct {
	// TracePath is dumped when no trace file argument is given.
	TracePath string
	// PreviewLen caps the leading hex preview.
	PreviewLen int
	LogLevel   string
	// SchemaPath points at a protoc descriptor set; empty selects the
	// compiled-in schema.
	SchemaPath string
	// ProtoPath names the .proto source used to regenerate a missing
	// descriptor set.
	ProtoPath string
	// ExtraKnownFields widens the unknown-field allow-list.
	ExtraKnownFields []wire.Number
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		PreviewLen: 200,
		LogLevel:   "info",
	}
}

// tracedump.toml key mapping.
type fileConfig struct {
	TracePath        string  `toml:"trace_path"`
	PreviewLen       int     `toml:"preview_len"`
	LogLevel         string  `toml:"log_level"`
	SchemaPath       string  `toml:"schema_path"`
	ProtoPath        string  `toml:"proto_path"`
	ExtraKnownFields []int32 `toml:"extra_known_fields"`
}

// Load overlays the TOML file at path onto the defaults. Only keys actually
// present in the file override anything.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("trace_path") {
		cfg.TracePath = strings.TrimSpace(raw.TracePath)
	}
	if meta.IsDefined("preview_len") {
		if raw.PreviewLen < 0 {
			return Config{}, fmt.Errorf("load config: preview_len must be >= 0, got %d", raw.PreviewLen)
		}
		cfg.PreviewLen = raw.PreviewLen
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("schema_path") {
		cfg.SchemaPath = strings.TrimSpace(raw.SchemaPath)
	}
	if meta.IsDefined("proto_path") {
		cfg.ProtoPath = strings.TrimSpace(raw.ProtoPath)
	}
	if meta.IsDefined("extra_known_fields") {
		for _, n := range raw.ExtraKnownFields {
			if n < 1 {
				return Config{}, fmt.Errorf("load config: field number must be >= 1, got %d", n)
			}
			cfg.ExtraKnownFields = append(cfg.ExtraKnownFields, wire.Number(n))
		}
	}
	return cfg, nil
}
