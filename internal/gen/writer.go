package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its directory and returns the
// paths it wrote. Files whose content is already on disk are left alone so
// their modification time only moves when the builder changes.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	var written []string

	for _, file := range files {
		path := file.Path()

		if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, file.Content) {
			continue
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", file.TypeName, err)
		}

		if err := os.WriteFile(path, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing %s: %w", file.Filename, err)
		}

		written = append(written, path)
	}

	return written, nil
}

// sidecarName is where the source of a file that failed to format is kept.
// It must not end in .go or the package would stop compiling.
func sidecarName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.txt"
}

// writeSidecar saves unformatted source next to the intended output.
func writeSidecar(file *GeneratedFile, content []byte) error {
	if file.Dir == "" {
		return nil
	}

	if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(file.Dir, sidecarName(file.Filename)), content, filePerm)
}
