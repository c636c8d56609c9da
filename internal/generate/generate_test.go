// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cvforge/internal/mapper"
	"github.com/pdiddy/cvforge/internal/render"
	"github.com/pdiddy/cvforge/pkg/types"
)

// fakeRenderer implements render.Renderer. On success it writes the
// artifacts rendercv would produce for the document it was given.
type fakeRenderer struct {
	unavailable bool
	failThemes  map[types.Theme]bool
	skipPDF     bool

	checks   int
	rendered []types.Document
	inputs   []string
}

func (f *fakeRenderer) Name() string { return "rendercv" }

func (f *fakeRenderer) Available(ctx context.Context) (string, error) {
	f.checks++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.unavailable {
		return "", errors.New("exec: \"rendercv\": executable file not found in $PATH")
	}
	return "rendercv v2.2", nil
}

func (f *fakeRenderer) Render(ctx context.Context, yamlPath, outDir string) error {
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return err
	}
	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	f.rendered = append(f.rendered, doc)
	f.inputs = append(f.inputs, yamlPath)

	if f.failThemes[doc.Design.Theme] {
		return &render.RenderError{Stderr: "theme exploded", Err: errors.New("exit status 1")}
	}

	stem := render.FileStem(doc.CV.Name)
	files := []string{stem + ".typ", stem + ".html", stem + ".md", stem + "_1.png"}
	if !f.skipPDF {
		files = append(files, stem+".pdf")
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(outDir, name), []byte("x"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

const profileJSON = `{
  "profile": {"name": "Lukas Schmidt", "email": "lukas@example.com", "github_url": "https://github.com/lschmidt"},
  "professional_experience": [
    {"company": "Acme", "title": "Engineer", "start_date": "2020-01-15", "end_date": "whenever",
     "summary": "Did great things. Shipped features."}
  ],
  "skills": {"other_skills": ["Docker"]}
}`

type fixture struct {
	gen      *Generator
	renderer *fakeRenderer
	logs     *observer.ObservedLogs
	out      *bytes.Buffer
	req      Request
	tempDir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(input, []byte(profileJSON), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)
	fr := &fakeRenderer{failThemes: map[types.Theme]bool{}}
	out := &bytes.Buffer{}
	gen := New(fr, zap.New(core), out)
	gen.tempDir = filepath.Join(dir, "tmp")
	require.NoError(t, os.MkdirAll(gen.tempDir, 0o755))

	return &fixture{
		gen:      gen,
		renderer: fr,
		logs:     logs,
		out:      out,
		tempDir:  gen.tempDir,
		req: Request{
			InputPath:     input,
			UserID:        "123",
			BaseOutputDir: filepath.Join(dir, "output"),
			Mapping:       mapper.DefaultOptions(),
		},
	}
}

func TestGenerate(t *testing.T) {
	fx := newFixture(t)

	report, err := fx.gen.Generate(context.Background(), fx.req)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "Lukas Schmidt", report.Name)
	assert.Equal(t, "rendercv v2.2", report.RendererVersion)
	assert.Equal(t, 1, fx.renderer.checks, "renderer should be queried once per run")
	assert.Zero(t, report.Failed())
	require.Len(t, report.Results, 1)

	res := report.Results[0]
	assert.Equal(t, types.DefaultTheme, res.Theme)
	assert.Equal(t, filepath.Join(fx.req.BaseOutputDir, "123", "sb2nov"), res.Dir)
	assert.Empty(t, res.YAMLPath)
	assert.True(t, res.Artifacts.PDF().Exists)
	assert.Len(t, res.Artifacts.Pages, 1)

	require.Len(t, fx.renderer.rendered, 1)
	doc := fx.renderer.rendered[0]
	assert.Equal(t, types.DefaultTheme, doc.Design.Theme)
	require.Len(t, doc.CV.Sections.Experience, 1)
	assert.Equal(t, "2020-01", doc.CV.Sections.Experience[0].StartDate)
	assert.Equal(t, "present", doc.CV.Sections.Experience[0].EndDate)

	// Temporary input is removed once rendering is done.
	assert.NoFileExists(t, fx.renderer.inputs[0])
	entries, err := os.ReadDir(fx.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.Contains(t, fx.out.String(), "Summary: 1 rendered, 0 failed")
}

func TestGenerate_LogsDateDiagnostics(t *testing.T) {
	fx := newFixture(t)

	report, err := fx.gen.Generate(context.Background(), fx.req)
	require.NoError(t, err)

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "professional_experience[0].end_date", report.Diagnostics[0].Field)

	warnings := fx.logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "professional_experience[0].end_date", warnings[0].ContextMap()["field"])
	assert.Equal(t, report.RunID, warnings[0].ContextMap()["run_id"])
}

func TestGenerate_DebugKeepsYAML(t *testing.T) {
	fx := newFixture(t)
	fx.req.Debug = true

	report, err := fx.gen.Generate(context.Background(), fx.req)
	require.NoError(t, err)

	want := filepath.Join(fx.req.BaseOutputDir, "123", "debug_sb2nov_cv_data.yaml")
	assert.Equal(t, want, report.Results[0].YAMLPath)
	assert.FileExists(t, want)
	assert.Contains(t, fx.out.String(), "debug: YAML saved to")
}

func TestGenerate_MultipleThemes(t *testing.T) {
	fx := newFixture(t)
	fx.req.Themes = []types.Theme{types.ThemeClassic, types.ThemeModernCV, types.ThemeSb2nov}
	fx.renderer.failThemes[types.ThemeModernCV] = true

	report, err := fx.gen.Generate(context.Background(), fx.req)
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Equal(t, 1, report.Failed())
	assert.NoError(t, report.Results[0].Err)
	assert.NoError(t, report.Results[2].Err)

	var rerr *render.RenderError
	require.ErrorAs(t, report.Results[1].Err, &rerr)
	assert.Equal(t, "theme exploded", rerr.Stderr)

	var themes []types.Theme
	for _, d := range fx.renderer.rendered {
		themes = append(themes, d.Design.Theme)
	}
	assert.Equal(t, fx.req.Themes, themes)
	assert.Contains(t, fx.out.String(), "Summary: 2 rendered, 1 failed (total: 3)")
	assert.Len(t, fx.logs.FilterMessage("render failed").All(), 1)
}

func TestGenerate_MissingPDF(t *testing.T) {
	fx := newFixture(t)
	fx.renderer.skipPDF = true

	report, err := fx.gen.Generate(context.Background(), fx.req)
	require.NoError(t, err)
	require.Error(t, report.Results[0].Err)
	assert.Contains(t, report.Results[0].Err.Error(), "Lukas_Schmidt_CV.pdf")
}

func TestGenerate_RendererUnavailable(t *testing.T) {
	fx := newFixture(t)
	fx.renderer.unavailable = true

	_, err := fx.gen.Generate(context.Background(), fx.req)
	assert.ErrorIs(t, err, ErrRendererUnavailable)
	assert.Contains(t, err.Error(), "executable file not found")
	assert.Empty(t, fx.renderer.rendered)
}

func TestGenerate_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *testing.T, req *Request)
		wantMsg string
	}{
		{
			name: "missing file",
			mutate: func(t *testing.T, req *Request) {
				req.InputPath = filepath.Join(t.TempDir(), "missing.json")
			},
			wantMsg: "opening profile",
		},
		{
			name: "invalid json",
			mutate: func(t *testing.T, req *Request) {
				require.NoError(t, os.WriteFile(req.InputPath, []byte("{nope"), 0o644))
			},
			wantMsg: "invalid JSON",
		},
		{
			name: "empty user id",
			mutate: func(t *testing.T, req *Request) {
				req.UserID = ""
			},
			wantMsg: "user ID must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			tt.mutate(t, &fx.req)

			_, err := fx.gen.Generate(context.Background(), fx.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, fx.renderer.rendered)
		})
	}
}

func TestGenerate_Cancelled(t *testing.T) {
	fx := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.gen.Generate(ctx, fx.req)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrRendererUnavailable)
	assert.Equal(t, 1, fx.renderer.checks)
	assert.Empty(t, fx.renderer.rendered)
}
