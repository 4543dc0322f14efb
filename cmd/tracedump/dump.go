package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firmtrace/tracedump/internal/dump"
	"github.com/firmtrace/tracedump/internal/schema"
	"github.com/firmtrace/tracedump/internal/trace"
)

// dumpCmd prints every packet in a trace file, including fields the schema
// does not know about.
func dumpCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "dump [trace-file]",
		Short: "Print every packet in a trace file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			path, err := resolveTracePath(cfg, args)
			if err != nil {
				return err
			}
			md, err := loadSchema(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Reading trace file: %s\n", path)
			tr, err := trace.ReadFile(path, md, cfg.PreviewLen)
			if err != nil {
				return err
			}

			printer := dump.NewPrinter(os.Stdout, schema.KnownSet(cfg.ExtraKnownFields...))
			printer.PrintTrace(tr)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
