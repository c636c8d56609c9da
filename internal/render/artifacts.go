// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ArtifactKind names one output format of the renderer.
type ArtifactKind string

const (
	ArtifactPDF      ArtifactKind = "pdf"
	ArtifactTypst    ArtifactKind = "typ"
	ArtifactHTML     ArtifactKind = "html"
	ArtifactMarkdown ArtifactKind = "md"
	ArtifactPNG      ArtifactKind = "png"
)

// documentKinds are the single-file artifacts, in report order.
var documentKinds = []ArtifactKind{ArtifactPDF, ArtifactTypst, ArtifactHTML, ArtifactMarkdown}

// Artifact is one expected output file.
type Artifact struct {
	Kind   ArtifactKind
	Path   string
	Exists bool
}

// ArtifactSet lists the files a render is expected to produce.
type ArtifactSet struct {
	Dir       string
	Documents []Artifact
	// Pages holds the PNG page images found on disk, in page order.
	Pages []Artifact
}

// Missing returns the expected documents that were not produced.
func (s ArtifactSet) Missing() []Artifact {
	var out []Artifact
	for _, a := range s.Documents {
		if !a.Exists {
			out = append(out, a)
		}
	}
	return out
}

// PDF returns the PDF artifact.
func (s ArtifactSet) PDF() Artifact {
	for _, a := range s.Documents {
		if a.Kind == ArtifactPDF {
			return a
		}
	}
	return Artifact{Kind: ArtifactPDF}
}

// FileStem returns the artifact base name for a CV owner, e.g.
// "Lukas Schmidt" -> "Lukas_Schmidt_CV".
func FileStem(cvName string) string {
	return strings.ReplaceAll(cvName, " ", "_") + "_CV"
}

// Artifacts reports which renderer outputs for cvName exist in dir.
func Artifacts(dir, cvName string) ArtifactSet {
	stem := FileStem(cvName)
	set := ArtifactSet{Dir: dir}

	for _, kind := range documentKinds {
		path := filepath.Join(dir, stem+"."+string(kind))
		set.Documents = append(set.Documents, Artifact{Kind: kind, Path: path, Exists: fileExists(path)})
	}

	matches, _ := filepath.Glob(filepath.Join(dir, globEscape(stem)+"_*.png"))
	type page struct {
		n    int
		path string
	}
	var pages []page
	for _, m := range matches {
		num := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(m), stem+"_"), ".png")
		n, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		pages = append(pages, page{n: n, path: m})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].n < pages[j].n })
	for _, p := range pages {
		set.Pages = append(set.Pages, Artifact{Kind: ArtifactPNG, Path: p.path, Exists: true})
	}

	return set
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// globEscape escapes glob metacharacters so names like "A [B]" match literally.
func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
