// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/cvforge/internal/cvfile"
	"github.com/pdiddy/cvforge/internal/mapper"
	"github.com/pdiddy/cvforge/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <profile.json>",
	Short: "Convert a profile export to RenderCV YAML without rendering",
	Long: `Convert maps a profile JSON export to a RenderCV YAML document and writes
it to --output, or to stdout when no output file is given. The renderer is
not invoked.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "YAML output file (default: stdout)")
	convertCmd.Flags().StringP("theme", "t", string(types.DefaultTheme), "CV theme: "+themeList())
	convertCmd.Flags().Int("max-other-skills", 10, "cap on the Tools & Technologies list (negative = no cap)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	themeName, _ := cmd.Flags().GetString("theme")
	maxOther, _ := cmd.Flags().GetInt("max-other-skills")

	themes, err := parseThemes([]string{themeName})
	if err != nil {
		return err
	}

	rec, err := cvfile.LoadRecord(args[0])
	if err != nil {
		return err
	}

	opts := mapper.OptionsFromConfig(types.MappingConfig{MaxOtherSkills: maxOther})
	res := mapper.New(opts).Map(rec, themes[0])
	for _, d := range res.Diagnostics {
		logger.Warn("recovered invalid source field", zap.String("field", d.Field), zap.Error(d.Err))
	}

	if output == "" {
		return cvfile.EncodeDocument(os.Stdout, res.Document)
	}
	if err := cvfile.WriteDocument(res.Document, output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "converted: %s -> %s (%s)\n", args[0], output, res.Document.CV.Name)
	return nil
}
