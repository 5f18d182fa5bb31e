// Command wadmap inspects Doom WAD archives: the lump directory, per-map
// wall geometry and placed things. It is the only part of the repository
// that performs I/O; the wad package itself works on in-memory buffers.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stuarthighley/wadmap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "wadmap",
		Short: "Inspect Doom WAD archives and their map geometry",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				l := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
				l.SetLevel(log.DebugLevel)
				wad.SetLogger(l)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newLumpsCommand())
	rootCmd.AddCommand(newMapCommand())

	return rootCmd
}

// openArchive loads path into memory and hands the buffer to the decoder.
func openArchive(path string) (*wad.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return wad.New(data)
}
