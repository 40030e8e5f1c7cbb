package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hdrview/internal/app"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [input]",
		Short: "Show an image file or directory through a display shader",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, jsonLogs := globalFlags(cmd)
			opts := app.ViewOptions{ConfigPath: configPath, JSONLogs: jsonLogs}
			if len(args) == 1 {
				opts.Input = args[0]
			}
			opts.Shader, _ = cmd.Flags().GetString("shader")
			opts.Frames, _ = cmd.Flags().GetInt("frames")
			if cmd.Flags().Changed("ev") {
				ev, _ := cmd.Flags().GetFloat32("ev")
				opts.EV = &ev
			}
			return c.app.View(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("shader", "s", "", "Display shader, relative to the asset root")
	cmd.Flags().Float32("ev", 0, "Exposure value passed to the shader as input_ev")
	cmd.Flags().Int("frames", 0, "Stop after this many frames (0 runs until interrupted)")
	return cmd
}
