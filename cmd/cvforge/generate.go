// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cvforge/internal/generate"
	"github.com/pdiddy/cvforge/internal/mapper"
	"github.com/pdiddy/cvforge/internal/render"
	"github.com/pdiddy/cvforge/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Convert a profile export and render it to PDF",
	Long: `Generate loads a profile JSON export, converts it to a RenderCV document,
and renders it once per requested theme into
<base-output-dir>/<user-id>/<theme>/. Existing output for a theme is
removed first.

Examples:
  cvforge generate --input profile.json --user-id 123
  cvforge generate -i profile.json -u 123 --theme classic --theme moderncv
  cvforge generate -i profile.json -u 456 --debug`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "path to the profile JSON export (required)")
	generateCmd.Flags().StringP("user-id", "u", "", "user ID, used to organize output (required)")
	generateCmd.Flags().StringSliceP("theme", "t", []string{string(types.DefaultTheme)},
		"CV theme, repeatable: "+themeList())
	generateCmd.Flags().String("base-output-dir", "output", "base output directory")
	generateCmd.Flags().BoolP("debug", "d", false, "keep the intermediate YAML in the user directory")
	generateCmd.Flags().String("renderer", render.DefaultBinary, "renderer executable")
	generateCmd.Flags().Int("max-other-skills", 10, "cap on the Tools & Technologies list (negative = no cap)")
	generateCmd.Flags().Int("max-highlight-length", 150, "target length of one highlight bullet")

	_ = generateCmd.MarkFlagRequired("input")
	_ = generateCmd.MarkFlagRequired("user-id")

	_ = viper.BindPFlag("themes", generateCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("base_output_dir", generateCmd.Flags().Lookup("base-output-dir"))
	_ = viper.BindPFlag("debug", generateCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("renderer.binary", generateCmd.Flags().Lookup("renderer"))
	_ = viper.BindPFlag("mapping.max_other_skills", generateCmd.Flags().Lookup("max-other-skills"))
	_ = viper.BindPFlag("mapping.max_highlight_length", generateCmd.Flags().Lookup("max-highlight-length"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	userID, _ := cmd.Flags().GetString("user-id")

	cfg, err := generateConfig()
	if err != nil {
		return err
	}

	rdr := render.New(cfg.Renderer.Binary)
	gen := generate.New(rdr, logger, os.Stdout)

	report, err := gen.Generate(context.Background(), generate.Request{
		InputPath:     input,
		UserID:        userID,
		Themes:        cfg.Themes,
		BaseOutputDir: cfg.BaseOutputDir,
		Debug:         cfg.Debug,
		Mapping:       mapper.OptionsFromConfig(cfg.Mapping),
	})
	if err != nil {
		if errors.Is(err, generate.ErrRendererUnavailable) {
			fmt.Fprintln(os.Stderr, "install the renderer with: pip install 'rendercv[full]'")
		}
		return err
	}

	printReport(report)
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d theme(s) failed to render", n)
	}
	return nil
}

// generateConfig merges flags, config file, and environment through viper.
func generateConfig() (types.GenerateConfig, error) {
	cfg := types.GenerateConfig{
		BaseOutputDir: viper.GetString("base_output_dir"),
		Debug:         viper.GetBool("debug"),
		Mapping: types.MappingConfig{
			PlaceholderName:    viper.GetString("mapping.placeholder_name"),
			MaxHighlightLength: viper.GetInt("mapping.max_highlight_length"),
			MaxOtherSkills:     viper.GetInt("mapping.max_other_skills"),
		},
		Renderer: types.RendererConfig{Binary: viper.GetString("renderer.binary")},
	}

	themes, err := parseThemes(viper.GetStringSlice("themes"))
	if err != nil {
		return cfg, err
	}
	cfg.Themes = themes
	return cfg, nil
}

// parseThemes validates theme names and drops duplicates, keeping order.
func parseThemes(raw []string) ([]types.Theme, error) {
	seen := map[types.Theme]bool{}
	var themes []types.Theme
	for _, s := range raw {
		t := types.Theme(strings.TrimSpace(s))
		if !t.Valid() {
			return nil, fmt.Errorf("unknown theme %q: choose from %s", s, themeList())
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		themes = append(themes, t)
	}
	return themes, nil
}

func themeList() string {
	names := make([]string, 0, len(types.Themes()))
	for _, t := range types.Themes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func printReport(r generate.Report) {
	fmt.Printf("\nRun %s\n", r.RunID)
	fmt.Printf("  user:  %s\n", r.UserID)
	fmt.Printf("  name:  %s\n", r.Name)
	fmt.Printf("  email: %s\n", r.Email)
	if r.RendererVersion != "" {
		fmt.Printf("  renderer: %s\n", r.RendererVersion)
	}
	if len(r.Diagnostics) > 0 {
		fmt.Printf("  warnings: %d field(s) could not be parsed and were defaulted\n", len(r.Diagnostics))
	}

	for _, res := range r.Results {
		fmt.Printf("\n  theme %s:\n", res.Theme)
		if res.Err != nil {
			fmt.Printf("    failed: %v\n", res.Err)
			continue
		}
		abs, err := filepath.Abs(res.Dir)
		if err != nil {
			abs = res.Dir
		}
		fmt.Printf("    location: %s\n", abs)
		for _, a := range res.Artifacts.Documents {
			status := "ok"
			if !a.Exists {
				status = "missing"
			}
			fmt.Printf("    %-4s %-7s %s\n", a.Kind, status, filepath.Base(a.Path))
		}
		for _, p := range res.Artifacts.Pages {
			fmt.Printf("    %-4s %-7s %s\n", p.Kind, "ok", filepath.Base(p.Path))
		}
		if res.YAMLPath != "" {
			fmt.Printf("    yaml %-7s %s\n", "kept", res.YAMLPath)
		}
	}
}
