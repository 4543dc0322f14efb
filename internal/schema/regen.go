package schema

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/firmtrace/tracedump/internal/tools"
)

// Regenerate rebuilds a descriptor set from a .proto source by invoking
// protoc. It is the fallback for a missing descriptor-set file; a missing or
// failing protoc propagates as an error, there is no further fallback.
func Regenerate(runner tools.CommandRunner, protoPath, outPath string) error {
	args := []string{
		"--descriptor_set_out=" + outPath,
		"--include_imports",
		"-I", filepath.Dir(protoPath),
		filepath.Base(protoPath),
	}
	log.Debug().Str("proto", protoPath).Str("out", outPath).Msg("regenerating descriptor set")

	_, stderr, code, err := runner.Run("protoc", args...)
	if err != nil {
		msg := string(bytes.TrimSpace(stderr))
		if msg == "" {
			return fmt.Errorf("schema: protoc (exit %d): %w", code, err)
		}
		return fmt.Errorf("schema: protoc (exit %d): %s: %w", code, msg, err)
	}
	return nil
}
