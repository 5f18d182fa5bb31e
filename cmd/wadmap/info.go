package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show archive kind, lump count and maps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openArchive(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Kind:   %s\n", a.Kind())
			fmt.Fprintf(out, "Format: %s\n", a.Format())
			fmt.Fprintf(out, "Lumps:  %d\n", a.NumLumps())
			fmt.Fprintf(out, "Maps:   %s\n", strings.Join(a.MapNames(), " "))
			return nil
		},
	}
}
