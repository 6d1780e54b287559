// Package assets provides embedded default data files.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
)

//go:embed catalog/coaching.yml
var defaultCatalog []byte

// DefaultCatalog returns the embedded coaching catalog document.
func DefaultCatalog() []byte {
	return defaultCatalog
}

// ReadCatalog returns the catalog document at path, falling back to the
// embedded default when no path is configured or the file cannot be read.
func ReadCatalog(path string) ([]byte, error) {
	if path == "" {
		return defaultCatalog, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Default().Warn("catalog file not found, using embedded default",
			slog.String("path", path),
		)
		return defaultCatalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return data, nil
}
