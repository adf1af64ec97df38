package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	prefixInput   = "input"
	prefixOutput  = "output"
	prefixSummary = "summary"
)

// path returns <DataDir>/<prefix>_<category>.<format>.
func (r *Runner) path(prefix, category string) string {
	return filepath.Join(r.cfg.DataDir, fmt.Sprintf("%s_%s.%s", prefix, category, r.codec.Format()))
}

// summaryPath is always YAML regardless of the interchange format.
func (r *Runner) summaryPath(category string) string {
	return filepath.Join(r.cfg.DataDir, fmt.Sprintf("%s_%s.yaml", prefixSummary, category))
}

// writeFile writes through a temporary file in the same directory and renames
// it into place, so readers never observe a half-written document.
func writeFile(path string, encode func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := encode(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}
