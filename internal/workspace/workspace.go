// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace manages the per-user, per-theme output directories.
//
// Layout:
//
//	<base>/<user-id>/<theme>/                       renderer artifacts
//	<base>/<user-id>/debug_<theme>_cv_data.yaml     intermediate YAML (debug runs)
package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/cvforge/pkg/types"
)

// DefaultBaseDir is the output root when none is configured.
const DefaultBaseDir = "output"

// Layout locates the output of one user and theme.
type Layout struct {
	BaseDir string
	UserID  string
	Theme   types.Theme
}

// Validate rejects user IDs and themes that would escape the base directory.
func (l Layout) Validate() error {
	if err := checkSegment("user ID", l.UserID); err != nil {
		return err
	}
	return checkSegment("theme", string(l.Theme))
}

func checkSegment(what, s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return fmt.Errorf("%s must not be empty", what)
	case s == "." || s == "..":
		return fmt.Errorf("%s %q is not a valid directory name", what, s)
	case strings.ContainsAny(s, `/\`):
		return fmt.Errorf("%s %q must not contain path separators", what, s)
	}
	return nil
}

func (l Layout) base() string {
	if l.BaseDir == "" {
		return DefaultBaseDir
	}
	return l.BaseDir
}

// UserDir returns <base>/<user-id>.
func (l Layout) UserDir() string {
	return filepath.Join(l.base(), l.UserID)
}

// ThemeDir returns <base>/<user-id>/<theme>.
func (l Layout) ThemeDir() string {
	return filepath.Join(l.UserDir(), string(l.Theme))
}

// DebugYAMLPath returns the path the intermediate YAML is kept at on debug runs.
func (l Layout) DebugYAMLPath() string {
	return filepath.Join(l.UserDir(), fmt.Sprintf("debug_%s_cv_data.yaml", l.Theme))
}

// Prepare removes artifacts of a previous run for this theme and creates an
// empty theme directory. Failure to remove old files is reported to w and
// does not stop the run.
func (l Layout) Prepare(w io.Writer) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dir := l.ThemeDir()
	if _, err := os.Stat(dir); err == nil {
		fmt.Fprintf(w, "cleaning up old %s version\n", l.Theme)
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintf(w, "warning: could not remove old files in %s: %v\n", dir, err)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
