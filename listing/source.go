package listing

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Source is the filesystem capability the collector runs against. The
// production implementation is OSSource; tests substitute failing fakes.
type Source interface {
	// Realpath resolves dir to its canonical, symlink free absolute form.
	Realpath(dir string) (string, error)
	// ReadDir returns the names of dir's immediate children in whatever
	// order the backend yields them. The collector sorts.
	ReadDir(dir string) ([]string, error)
	// Stat follows symlinks.
	Stat(path string) (fs.FileInfo, error)
	// Lstat does not follow symlinks.
	Lstat(path string) (fs.FileInfo, error)
}

// OSSource reads the host filesystem.
type OSSource struct{}

func (OSSource) Realpath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func (OSSource) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (OSSource) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSSource) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}
