// Package filesystem abstracts the read-only file access used to load record documents.
package filesystem

import (
	"io/fs"
	"os"
	"path"
	"strings"
)

// FileSystem defines the contract for the file operations recq needs.
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(dirname string) ([]os.DirEntry, error)

	// Utility operations
	Exists(path string) bool
	IsDir(path string) bool
}

// StandardFileSystem implements FileSystem using the standard library
type StandardFileSystem struct{}

// NewStandardFileSystem creates a new StandardFileSystem
func NewStandardFileSystem() *StandardFileSystem {
	return &StandardFileSystem{}
}

// Stat returns file info
func (fs *StandardFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads file contents
func (fs *StandardFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// ReadDir reads directory contents
func (fs *StandardFileSystem) ReadDir(dirname string) ([]os.DirEntry, error) {
	return os.ReadDir(dirname)
}

// Exists checks if a path exists
func (fs *StandardFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func (fs *StandardFileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FS adapts an io/fs.FS (for example fstest.MapFS or an embed.FS) to FileSystem.
// Names are slash separated; a leading "/" or "./" is ignored.
type FS struct {
	fsys fs.FS
}

// FromFS wraps fsys.
func FromFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

func (f *FS) clean(name string) string {
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if name == "" {
		return "."
	}
	return name
}

// Stat returns file info
func (f *FS) Stat(name string) (os.FileInfo, error) {
	return fs.Stat(f.fsys, f.clean(name))
}

// ReadFile reads file contents
func (f *FS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, f.clean(name))
}

// ReadDir reads directory contents
func (f *FS) ReadDir(name string) ([]os.DirEntry, error) {
	return fs.ReadDir(f.fsys, f.clean(name))
}

// Exists checks if a path exists
func (f *FS) Exists(name string) bool {
	_, err := f.Stat(name)
	return err == nil
}

// IsDir checks if a path is a directory
func (f *FS) IsDir(name string) bool {
	info, err := f.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}
