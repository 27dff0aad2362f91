package main

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"boxpaint/pkg/layout"
	"boxpaint/pkg/surface"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func newDumpCmd(a *app) *cobra.Command {
	var asJSON, calls bool
	cmd := &cobra.Command{
		Use:   "dump <input.html>",
		Short: "Print the laid-out element tree",
		Long: "Print the laid-out element tree of an HTML file. With --calls the\n" +
			"document is rendered onto a recording surface and the paint calls are\n" +
			"printed instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !calls {
				c, err := a.mount(args[0], nil)
				if err != nil {
					return err
				}
				snap := c.Snapshot()
				if !asJSON {
					fmt.Fprint(out, layout.Tree(snap).String())
					return nil
				}
				return writeJSON(cmd, snap)
			}

			var rec *surface.Recorder
			c, err := a.mount(args[0], func(w, h int) surface.Surface {
				rec = surface.NewRecorder(float64(w), float64(h))
				return rec
			})
			if err != nil {
				return err
			}
			if _, err := c.Render(); err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, rec.Calls)
			}
			for _, call := range rec.Calls {
				switch call.Op {
				case surface.OpFillRect:
					fmt.Fprintf(out, "%s %g,%g %gx%g %s\n", call.Op, call.X, call.Y, call.W, call.H, call.Color)
				case surface.OpFillText:
					fmt.Fprintf(out, "%s %g,%g %gpx %s %q\n", call.Op, call.X, call.Y, call.Size, call.Color, call.Text)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	cmd.Flags().BoolVar(&calls, "calls", false, "print recorded paint calls")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := jsonAPI.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
