// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render drives the external CV renderer binary (rendercv) and
// inspects the artifacts it leaves behind.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultBinary is the renderer executable looked up on PATH.
const DefaultBinary = "rendercv"

// Renderer turns a serialized CV document into PDF and companion files.
type Renderer interface {
	// Name returns the renderer binary name.
	Name() string

	// Available checks that the binary is on PATH and answers a version
	// query, and returns the reported version.
	Available(ctx context.Context) (string, error)

	// Render renders the document at yamlPath into outDir.
	Render(ctx context.Context, yamlPath, outDir string) error
}

// RenderError is returned when the renderer exits non-zero. Stderr holds
// its diagnostic output.
type RenderError struct {
	Stderr string
	Err    error
}

func (e *RenderError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("renderer failed: %v", e.Err)
	}
	return fmt.Sprintf("renderer failed: %v: %s", e.Err, msg)
}

func (e *RenderError) Unwrap() error { return e.Err }

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// rendercv implements Renderer by shelling out to the rendercv CLI.
type rendercv struct {
	bin  string
	exec executor
}

// New returns a Renderer that runs bin. An empty bin means DefaultBinary.
func New(bin string) Renderer {
	return newRenderer(bin, &osExecutor{})
}

func newRenderer(bin string, exec executor) *rendercv {
	if bin == "" {
		bin = DefaultBinary
	}
	return &rendercv{bin: bin, exec: exec}
}

func (r *rendercv) Name() string { return r.bin }

func (r *rendercv) Available(ctx context.Context) (string, error) {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return "", fmt.Errorf("looking up %s: %w", r.bin, err)
	}
	return r.Version(ctx)
}

// Version runs "<bin> --version" and returns its trimmed output.
func (r *rendercv) Version(ctx context.Context) (string, error) {
	stdout, stderr, err := r.exec.Run(ctx, r.bin, "--version")
	if err != nil {
		return "", fmt.Errorf("querying %s version: %w", r.bin, &RenderError{Stderr: string(stderr), Err: err})
	}
	return strings.TrimSpace(string(stdout)), nil
}

func (r *rendercv) Render(ctx context.Context, yamlPath, outDir string) error {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving output directory %s: %w", outDir, err)
	}

	args := []string{"render", yamlPath, "--output-folder-name", absOut}
	if _, stderr, err := r.exec.Run(ctx, r.bin, args...); err != nil {
		return &RenderError{Stderr: string(stderr), Err: err}
	}
	return nil
}
