package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/stuarthighley/wadmap"
)

// jsonPoint, jsonSegment and jsonThing mirror the objects the map viewer
// consumes.
type jsonPoint struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
}

type jsonSegment struct {
	Start  jsonPoint `json:"start"`
	End    jsonPoint `json:"end"`
	Length float64   `json:"length"`
}

type jsonThing struct {
	X         int16    `json:"x"`
	Y         int16    `json:"y"`
	Angle     int16    `json:"angle"`
	Type      uint16   `json:"type"`
	Flags     uint16   `json:"flags"`
	TypeName  string   `json:"doomTypeName,omitempty"`
	FlagBits  []uint16 `json:"doomFlags"`
	FlagNames []string `json:"doomFlagNames"`
}

func newMapCommand() *cobra.Command {
	var things bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "map FILE NAME",
		Short: "Decode a map's line segments or things",
		Long: `Decode the named map from a WAD archive. NAME is a map marker in either
convention: E1M1 (episodic) or MAP01 (sequential).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, ok := wad.ParseMapName(args[1])
			if !ok {
				return fmt.Errorf("unrecognized map name %q", args[1])
			}
			a, err := openArchive(args[0])
			if err != nil {
				return err
			}
			if things {
				return writeThings(cmd, a.Things(sel), asJSON)
			}
			return writeSegments(cmd, a.LineSegments(sel), asJSON)
		},
	}

	cmd.Flags().BoolVar(&things, "things", false, "decode things instead of line segments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")

	return cmd
}

func writeSegments(cmd *cobra.Command, segments []wad.LineSegment, asJSON bool) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		for _, s := range segments {
			fmt.Fprintf(out, "(%6d,%6d) -> (%6d,%6d)  length %.1f\n",
				s.Start.X, s.Start.Y, s.End.X, s.End.Y, s.Length())
		}
		return nil
	}
	records := make([]jsonSegment, 0, len(segments))
	for _, s := range segments {
		records = append(records, jsonSegment{
			Start:  jsonPoint(s.Start),
			End:    jsonPoint(s.End),
			Length: s.Length(),
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func writeThings(cmd *cobra.Command, things []wad.Thing, asJSON bool) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		for _, t := range things {
			name, ok := t.TypeName()
			if !ok {
				name = fmt.Sprintf("type %d", t.Type)
			}
			fmt.Fprintf(out, "(%6d,%6d) angle %3d  %-28s %v\n",
				t.X, t.Y, t.Angle, name, t.FlagNames())
		}
		return nil
	}
	records := make([]jsonThing, 0, len(things))
	for _, t := range things {
		name, _ := t.TypeName()
		records = append(records, jsonThing{
			X:         t.X,
			Y:         t.Y,
			Angle:     t.Angle,
			Type:      t.Type,
			Flags:     t.Flags,
			TypeName:  name,
			FlagBits:  t.FlagBits(),
			FlagNames: t.FlagNames(),
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
