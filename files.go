package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveSources expands path into the list of .vm files to translate:
// either the single named file, or every file in the named directory whose
// name ends in ".vm".
func resolveSources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%q does not exist", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("can't read directory %q: %w", path, err)
	}
	var files []string
	for _, ent := range entries {
		if !ent.IsDir() && strings.HasSuffix(ent.Name(), ".vm") {
			files = append(files, filepath.Join(path, ent.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("there are no .vm files in %q", path)
	}
	return files, nil
}

// fileStem returns the directory-free basename without extension, used to
// mangle static references. Two same-named files from different directories
// would alias; canonical VM programs keep basenames unique.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
