package filesystem

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// InstallEmbedFS writes every file of fsys below root, keeping the directory
// layout. Existing files are overwritten.
func InstallEmbedFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("could not read embedded FS: %w", err)
		}

		target := filepath.Join(root, filepath.FromSlash(name))

		if entry.IsDir() {
			if err := CreateDirectoryIfNotExists(target); err != nil {
				return fmt.Errorf("creating directory '%s' failed: %w", target, err)
			}
			return nil
		}

		log.Printf("installing '%s'", name)

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", name, err)
		}

		if err := os.WriteFile(target, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", target, err)
		}

		return nil
	})
}
