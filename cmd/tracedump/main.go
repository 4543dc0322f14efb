package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracedump",
		Short: "Inspect Perfetto-format trace files",
		Long: `tracedump reads a Perfetto-format trace file and prints each packet in
human-readable form.

Every packet is decoded twice: once against the trace schema for named
field access, and once as a raw protobuf wire-format walk. Field numbers
present on the wire that the schema does not cover are reported per
packet, so gaps between the firmware encoder and the schema show up
immediately.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		dumpCmd(),
		summaryCmd(),
		fieldsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tracedump: %v\n", err)
		os.Exit(1)
	}
}
