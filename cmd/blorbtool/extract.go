package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/goglk/blorb"
	"pkt.systems/pslog"
)

// usageTags maps flag values to resource index usages.
var usageTags = map[string]blorb.ChunkType{
	"pict": blorb.TypePict,
	"snd":  blorb.TypeSnd,
	"exec": blorb.TypeExec,
	"data": blorb.TypeData,
}

func newExtractCmd() *cobra.Command {
	var usage string
	var id uint32
	var output string
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract one resource from a Blorb file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, ok := usageTags[usage]
			if !ok {
				return fmt.Errorf("unknown usage %q (want pict, snd, exec, or data)", usage)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			r, err := blorb.New(data)
			if err != nil {
				return err
			}
			chunk, err := r.ResourceByID(tag, id)
			if err != nil {
				return err
			}
			pslog.Ctx(cmd.Context()).
				With("usage", usage).
				With("id", id).
				With("type", string(chunk.Type)).
				With("bytes", len(chunk.Bytes)).
				Debug("extracted resource")

			if output == "" {
				_, err := cmd.OutOrStdout().Write(chunk.Bytes)
				return err
			}
			return os.WriteFile(output, chunk.Bytes, 0o644)
		},
	}
	cmd.Flags().StringVarP(&usage, "usage", "u", "exec", "resource usage: pict, snd, exec, or data")
	cmd.Flags().Uint32VarP(&id, "id", "i", 0, "resource number")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
