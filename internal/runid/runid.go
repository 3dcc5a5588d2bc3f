// Package runid derives the run identifier and output directory layout
// of spec.md §6: <out>/out/<id>/{data.h5,log/log.log}. Grounded on the
// teacher's small single-purpose OS-facing helpers (utils/system.go).
package runid

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// New derives a run identifier from the current time, used to name the
// output subdirectory (spec.md §6).
func New(now time.Time) string {
	return now.UTC().Format("20060102T150405Z")
}

// Layout is the resolved set of paths under <out>/out/<id>/.
type Layout struct {
	Root   string // <out>/out/<id>
	DataH5 string // <out>/out/<id>/data.h5
	LogDir string // <out>/out/<id>/log
	LogLog string // <out>/out/<id>/log/log.log
}

// Prepare creates <out>/out/<id>/log and returns the resolved Layout.
func Prepare(out, id string) (Layout, error) {
	root := filepath.Join(out, "out", id)
	logDir := filepath.Join(root, "log")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return Layout{}, fmt.Errorf("creating output directory %q: %w", logDir, err)
	}
	return Layout{
		Root:   root,
		DataH5: filepath.Join(root, "data.h5"),
		LogDir: logDir,
		LogLog: filepath.Join(logDir, "log.log"),
	}, nil
}
