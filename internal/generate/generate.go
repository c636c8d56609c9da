// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the profile-to-PDF pipeline: load the export, map it
// to a CV document, write the renderer input, render each requested theme,
// and report what was produced.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/cvforge/internal/cvfile"
	"github.com/pdiddy/cvforge/internal/mapper"
	"github.com/pdiddy/cvforge/internal/render"
	"github.com/pdiddy/cvforge/internal/workspace"
	"github.com/pdiddy/cvforge/pkg/types"
)

// ErrRendererUnavailable is returned when the renderer binary cannot be run.
var ErrRendererUnavailable = errors.New("renderer is not installed or not in PATH")

// Request describes one generate run.
type Request struct {
	// InputPath is the profile export JSON file.
	InputPath string

	// UserID names the per-user output directory.
	UserID string

	// Themes are rendered in order. Empty means types.DefaultTheme.
	Themes []types.Theme

	// BaseOutputDir is the output root (default "output").
	BaseOutputDir string

	// Debug keeps the intermediate YAML at the layout's debug path instead
	// of a temporary file.
	Debug bool

	Mapping mapper.Options
}

// ThemeResult is the outcome of rendering one theme.
type ThemeResult struct {
	Theme types.Theme
	Dir   string

	// YAMLPath is the kept renderer input, set on debug runs only.
	YAMLPath string

	Artifacts render.ArtifactSet
	Err       error
}

// Report summarizes a run.
type Report struct {
	RunID           string
	UserID          string
	Name            string
	Email           string
	RendererVersion string
	Diagnostics     []mapper.Diagnostic
	Results         []ThemeResult
}

// Failed returns the number of themes that did not render.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Generator runs requests against a renderer.
type Generator struct {
	renderer render.Renderer
	logger   *zap.Logger
	out      io.Writer

	// tempDir holds non-debug YAML files; empty means os.TempDir.
	tempDir string
}

// New returns a Generator. Progress lines are written to out; diagnostics
// go to logger. A nil logger discards diagnostics.
func New(r render.Renderer, logger *zap.Logger, out io.Writer) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Generator{renderer: r, logger: logger, out: out}
}

// Generate executes req. It returns an error when the run cannot start
// (renderer missing, unreadable input, invalid layout). Per-theme render
// failures are recorded in the report and do not stop other themes.
func (g *Generator) Generate(ctx context.Context, req Request) (Report, error) {
	report := Report{RunID: uuid.NewString(), UserID: req.UserID}
	log := g.logger.With(zap.String("run_id", report.RunID), zap.String("user_id", req.UserID))

	themes := req.Themes
	if len(themes) == 0 {
		themes = []types.Theme{types.DefaultTheme}
	}
	for _, theme := range themes {
		l := workspace.Layout{BaseDir: req.BaseOutputDir, UserID: req.UserID, Theme: theme}
		if err := l.Validate(); err != nil {
			return report, err
		}
	}

	v, err := g.renderer.Available(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}
		return report, fmt.Errorf("%s: %w: %w", g.renderer.Name(), ErrRendererUnavailable, err)
	}
	report.RendererVersion = v

	fmt.Fprintf(g.out, "loading profile: %s\n", req.InputPath)
	rec, err := cvfile.LoadRecord(req.InputPath)
	if err != nil {
		return report, err
	}

	res := mapper.New(req.Mapping).Map(rec, themes[0])
	for _, d := range res.Diagnostics {
		log.Warn("recovered invalid source field",
			zap.String("field", d.Field),
			zap.Error(d.Err),
		)
	}
	report.Diagnostics = res.Diagnostics
	report.Name = res.Document.CV.Name
	report.Email = res.Document.CV.Email

	fmt.Fprintf(g.out, "converted profile: %s <%s>, sections: %v\n",
		report.Name, report.Email, res.Document.CV.Sections.Names())

	for _, theme := range themes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		doc := res.Document
		doc.Design.Theme = theme
		layout := workspace.Layout{BaseDir: req.BaseOutputDir, UserID: req.UserID, Theme: theme}

		tr := g.renderTheme(ctx, doc, layout, req.Debug)
		if tr.Err != nil {
			log.Error("render failed", zap.String("theme", string(theme)), zap.Error(tr.Err))
			fmt.Fprintf(g.out, "failed:    %s (%v)\n", theme, tr.Err)
		} else {
			log.Info("rendered", zap.String("theme", string(theme)), zap.String("dir", tr.Dir))
			fmt.Fprintf(g.out, "rendered:  %s -> %s\n", theme, tr.Dir)
		}
		report.Results = append(report.Results, tr)
	}

	fmt.Fprintf(g.out, "\nSummary: %d rendered, %d failed (total: %d)\n",
		len(report.Results)-report.Failed(), report.Failed(), len(report.Results))
	return report, nil
}

func (g *Generator) renderTheme(ctx context.Context, doc types.Document, layout workspace.Layout, debug bool) ThemeResult {
	tr := ThemeResult{Theme: layout.Theme, Dir: layout.ThemeDir()}

	if err := layout.Prepare(g.out); err != nil {
		tr.Err = err
		return tr
	}

	yamlPath, cleanup, err := g.writeInput(doc, layout, debug)
	if err != nil {
		tr.Err = err
		return tr
	}
	defer cleanup()
	if debug {
		tr.YAMLPath = yamlPath
		fmt.Fprintf(g.out, "debug: YAML saved to %s\n", yamlPath)
	}

	if err := g.renderer.Render(ctx, yamlPath, tr.Dir); err != nil {
		tr.Err = err
		return tr
	}

	tr.Artifacts = render.Artifacts(tr.Dir, doc.CV.Name)
	if pdf := tr.Artifacts.PDF(); !pdf.Exists {
		tr.Err = fmt.Errorf("renderer finished but %s was not produced", pdf.Path)
	}
	return tr
}

// writeInput serializes doc for the renderer and returns its path plus a
// cleanup func that removes temporary files.
func (g *Generator) writeInput(doc types.Document, layout workspace.Layout, debug bool) (string, func(), error) {
	if debug {
		path := layout.DebugYAMLPath()
		if err := cvfile.WriteDocument(doc, path); err != nil {
			return "", nil, err
		}
		return path, func() {}, nil
	}

	f, err := os.CreateTemp(g.tempDir, "cvforge-*.yaml")
	if err != nil {
		return "", nil, fmt.Errorf("creating temporary YAML: %w", err)
	}
	path := f.Name()
	cleanup := func() { os.Remove(path) }

	if err := cvfile.EncodeDocument(f, doc); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temporary YAML: %w", err)
	}
	return path, cleanup, nil
}
