package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// GatherTrackFiles expands roots into track files. Files are kept when their
// extension is listed, directories contribute their direct entries with a
// listed extension in name order.
func GatherTrackFiles(roots []string, extensions []string) ([]string, error) {
	hasExtension := func(name string) bool {
		return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			if hasExtension(fi.Name()) {
				paths = append(paths, root)
			}
		} else if fi.Mode().IsDir() {
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			var found []string
			for _, entry := range entries {
				if entry.Type().IsRegular() && hasExtension(entry.Name()) {
					found = append(found, filepath.Join(root, entry.Name()))
				}
			}

			sort.Strings(found)
			paths = append(paths, found...)
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	return paths, nil
}
