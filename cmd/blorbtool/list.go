package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/goglk/blorb"
	"pkt.systems/pslog"
)

func newListCmd() *cobra.Command {
	var chunks bool
	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the resources in a Blorb file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			r, err := blorb.New(data)
			if err != nil {
				return err
			}
			pslog.Ctx(cmd.Context()).
				With("file", args[0]).
				With("resources", len(r.Resources())).
				Debug("parsed blorb")

			out := cmd.OutOrStdout()
			for _, info := range r.Resources() {
				fmt.Fprintf(out, "%s\t%d\toffset %d\n", info.Usage, info.ID, info.Offset)
			}
			if !chunks {
				return nil
			}

			fmt.Fprintln(out)
			for {
				chunk, err := r.Next()
				if errors.Is(err, blorb.ErrEndOfFile) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d bytes\n", chunk.Type, len(chunk.Bytes))
			}
		},
	}
	cmd.Flags().BoolVar(&chunks, "chunks", false, "also list every chunk in file order")
	return cmd
}
