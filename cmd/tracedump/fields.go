package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firmtrace/tracedump/internal/dump"
	"github.com/firmtrace/tracedump/internal/schema"
)

// fieldsCmd prints the known-field table: every TracePacket field number the
// dumper treats as handled, and whether it gets dedicated formatting.
func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the TracePacket fields this tool knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := dump.NewPrinter(os.Stdout, schema.KnownSet())
			printer.PrintFieldTable(schema.KnownFields())
			return nil
		},
	}
}
