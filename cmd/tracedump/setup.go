package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/firmtrace/tracedump/internal/config"
	"github.com/firmtrace/tracedump/internal/logging"
	"github.com/firmtrace/tracedump/internal/schema"
	"github.com/firmtrace/tracedump/internal/tools"
)

const defaultConfigFile = "tracedump.toml"

// runFlags are the flags shared by the trace-reading subcommands. Flags win
// over config file values.
type runFlags struct {
	configPath string
	schemaPath string
	protoPath  string
	previewLen int
	logLevel   string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to tracedump.toml")
	cmd.Flags().StringVar(&f.schemaPath, "schema", "", "protoc descriptor set to decode against")
	cmd.Flags().StringVar(&f.protoPath, "proto", "", ".proto source used to regenerate a missing descriptor set")
	cmd.Flags().IntVar(&f.previewLen, "preview", 0, "hex preview length in bytes")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("schema") {
		cfg.SchemaPath = f.schemaPath
	}
	if cmd.Flags().Changed("proto") {
		cfg.ProtoPath = f.protoPath
	}
	if cmd.Flags().Changed("preview") {
		if f.previewLen < 0 {
			return config.Config{}, fmt.Errorf("--preview must be >= 0, got %d", f.previewLen)
		}
		cfg.PreviewLen = f.previewLen
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	logging.ConfigureRuntime(cfg.LogLevel)
	return cfg, nil
}

// loadConfig falls back to a tracedump.toml in the working directory, then to
// compiled-in defaults.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}

// loadSchema picks the Trace descriptor: compiled-in subset by default, a
// descriptor set from disk when configured. A missing descriptor set is
// regenerated with protoc when a .proto source is configured; a missing or
// failing protoc is fatal.
func loadSchema(cfg config.Config) (protoreflect.MessageDescriptor, error) {
	if cfg.SchemaPath == "" {
		return schema.Builtin()
	}
	if _, err := os.Stat(cfg.SchemaPath); err != nil {
		if cfg.ProtoPath == "" {
			return nil, fmt.Errorf("schema %s: %w", cfg.SchemaPath, err)
		}
		log.Info().Str("schema", cfg.SchemaPath).Str("proto", cfg.ProtoPath).
			Msg("descriptor set missing, regenerating with protoc")
		if err := schema.Regenerate(tools.ExecRunner{}, cfg.ProtoPath, cfg.SchemaPath); err != nil {
			return nil, err
		}
	}
	return schema.LoadDescriptorSet(cfg.SchemaPath)
}

func resolveTracePath(cfg config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.TracePath != "" {
		return cfg.TracePath, nil
	}
	return "", errors.New("no trace file argument and no trace_path configured")
}
