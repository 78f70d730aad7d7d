// avatar_render 命令行工具：离屏渲染头像、查看名称颜色、校验样式表
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "avatar_render",
		Short: "Render circular avatars to PNG without a window",
		Long: `avatar_render draws the same circular avatar as the interactive widget
using the CPU rasterizer, so it works on headless machines and in CI.

Use "render" to write a PNG, "colors" to preview placeholder colors for names,
and "validate" to check an avatar style sheet.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !flagVerbose {
				log.SetOutput(io.Discard)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show detailed logs")

	rootCmd.AddCommand(newRenderCmd(), newColorsCmd(), newValidateCmd())
	return rootCmd
}
