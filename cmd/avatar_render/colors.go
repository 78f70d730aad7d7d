package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gonewx/avatarview/pkg/avatar"
	"github.com/gonewx/avatarview/pkg/config"
	"github.com/spf13/cobra"
)

var (
	swatchTextColor = lipgloss.Color(config.FormatColor(avatar.PlaceholderTextColor))

	styleName = lipgloss.NewStyle().Width(20)
	styleHash = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors NAME...",
		Short: "Show the placeholder initial and color for each name",
		Long: `colors prints a colored swatch per name with the placeholder initial,
the background color as #RRGGBB and the 32-bit name hash it comes from.
An empty argument ("") shows the placeholder used when no name is set.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printColors(cmd.OutOrStdout(), args)
		},
	}
}

// printColors 每个名称输出一行：色块 + 名称 + 颜色 + 哈希
func printColors(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, colorLine(name))
	}
}

func colorLine(name string) string {
	spec := avatar.DerivePlaceholder(name)
	hex := config.FormatColor(spec.Background)

	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(swatchTextColor).
		Bold(true).
		Padding(0, 2).
		Render(spec.Initial)

	label := name
	if label == "" {
		label = "(no name)"
	}

	return strings.Join([]string{
		swatch,
		styleName.Render(label),
		hex,
		styleHash.Render(fmt.Sprintf("hash=%d", avatar.NameHash(name))),
	}, " ")
}
