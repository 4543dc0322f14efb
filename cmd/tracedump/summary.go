package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firmtrace/tracedump/internal/dump"
	"github.com/firmtrace/tracedump/internal/schema"
	"github.com/firmtrace/tracedump/internal/trace"
)

// summaryCmd prints packet-kind counts, the covered time span, and the
// interned string tables without the full per-packet dump.
func summaryCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "summary [trace-file]",
		Short: "Print an aggregate view of a trace file",
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

			tr, err := trace.ReadFile(path, md, cfg.PreviewLen)
			if err != nil {
				return err
			}

			fmt.Printf("Trace: %s (%d bytes)\n", path, tr.Size)
			printer := dump.NewPrinter(os.Stdout, schema.KnownSet(cfg.ExtraKnownFields...))
			printer.PrintSummary(dump.Summarize(tr))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
