package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	lumpHeaderStyle = lipgloss.NewStyle().Bold(true)
	markerStyle     = lipgloss.NewStyle().Faint(true)
)

func newLumpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lumps FILE",
		Short: "List the archive's lump directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openArchive(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, lumpHeaderStyle.Render(fmt.Sprintf("%-8s %10s %10s", "NAME", "OFFSET", "SIZE")))
			for lump := range a.Lumps() {
				row := fmt.Sprintf("%-8s %10d %10d", lump.Name, lump.Offset, lump.Size)
				if lump.Size == 0 {
					row = markerStyle.Render(row)
				}
				fmt.Fprintln(out, row)
			}
			return nil
		},
	}
}
