package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <input.html>",
		Short: "Render an HTML file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Output
			}
			c, err := a.mount(args[0], nil)
			if err != nil {
				return err
			}
			if err := c.SavePNG(output); err != nil {
				return fmt.Errorf("saving %s: %w", output, err)
			}
			a.logger.Info("rendered", zap.String("input", args[0]), zap.String("output", output))
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered %s to %s\n", args[0], output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default from config)")
	return cmd
}
