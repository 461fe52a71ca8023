package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hshore29/pyolk/decoder"
	"github.com/hshore29/pyolk/pkg/olk"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <record-file>",
		Short: "Decode one record file and print its property map as JSON",
		Long: `The dump command decodes a single record file, entity or block, and
prints its recovered property map as indented JSON.

Example:
  olkdump dump 00000001.dat
  olkdump dump --debug 00000001.dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	printVerbose("decoding %s\n", path)

	rec, err := olk.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	kind := "entity"
	if rec.Kind == decoder.KindBlock {
		kind = "block"
	}
	printVerbose("kind=%s class_id=%d block_type=%q properties=%d\n", kind, rec.ClassID, rec.BlockType, len(rec.Properties))

	out := map[string]any{
		"kind":       kind,
		"classId":    rec.ClassID,
		"recordId":   rec.RecordID,
		"blockType":  rec.BlockType,
		"properties": rec.Properties,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
