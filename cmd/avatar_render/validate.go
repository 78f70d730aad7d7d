package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonewx/avatarview/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [PATH]",
		Short: "Check an avatar style sheet",
		Long: `validate parses a style sheet and checks every style separately,
so one run reports all broken styles instead of only the first one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultStyleSheetPath
			if len(args) == 1 {
				path = args[0]
			}
			return validateStyleFile(cmd.OutOrStdout(), path)
		},
	}
}

// validateStyleFile 逐个样式校验并输出结果，有任何错误时返回 error
func validateStyleFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "❌ 读取文件失败: %v\n", err)
		return err
	}

	var sheet config.StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		fmt.Fprintf(w, "❌ YAML 解析失败: %v\n", err)
		return err
	}

	fmt.Fprintf(w, "✅ YAML 格式正确\n")
	fmt.Fprintf(w, "✅ 样式数量: %d\n", len(sheet.Styles))
	if len(sheet.Styles) == 0 {
		fmt.Fprintf(w, "❌ 至少需要一个样式\n")
		return fmt.Errorf("%s: no styles", path)
	}

	invalid := 0
	for _, name := range sheet.Names() {
		cfg, err := sheet.Style(name)
		if err != nil {
			fmt.Fprintf(w, "❌ %s: %v\n", name, err)
			invalid++
			continue
		}
		fmt.Fprintf(w, "✅ %s: border=%d %s text=%d%% scale=%s pulse=%s\n",
			name, cfg.BorderWidth, config.FormatColor(cfg.BorderColor),
			cfg.TextSizePercentage, cfg.ScaleType, cfg.PulsePolicy)
	}

	if invalid > 0 {
		fmt.Fprintf(w, "❌ 有 %d 个样式无效\n", invalid)
		return fmt.Errorf("%s: %d invalid styles", path, invalid)
	}
	fmt.Fprintf(w, "✅ 所有样式有效\n")
	return nil
}
