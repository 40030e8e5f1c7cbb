package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hdrview/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [shaders...]",
		Short: "Compile shaders once and report their diagnostics",
		Long: "Compile shaders once and report their diagnostics. Without arguments, " +
			"every configured display and LUT shader is compiled.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, jsonLogs := globalFlags(cmd)
			return c.app.Compile(cmd.Context(), args, app.CompileOptions{
				ConfigPath: configPath,
				JSONLogs:   jsonLogs,
			})
		},
	}
}
