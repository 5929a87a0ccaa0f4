// Package vfs is the file system the editor reads and writes documents
// through.
//
// OSFS is backed by the operating system. MemFS keeps files in memory and is
// used by tests to exercise file handling without touching disk.
package vfs

import (
	"io/fs"
	"time"
)

// FS is the set of file operations the editor needs.
type FS interface {
	// ReadFile reads the entire file content. A missing file yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Stat returns file information.
	Stat(path string) (FileInfo, error)
}

// DefaultPerm is the permission used for newly created files.
const DefaultPerm fs.FileMode = 0o644

// FileInfo describes a file or directory.
type FileInfo struct {
	path    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

// NewFileInfo creates a FileInfo from the given parameters.
func NewFileInfo(path string, size int64, mode fs.FileMode, modTime time.Time, isDir bool) FileInfo {
	return FileInfo{
		path:    path,
		size:    size,
		mode:    mode,
		modTime: modTime,
		isDir:   isDir,
	}
}

// Path returns the full path.
func (fi FileInfo) Path() string { return fi.path }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode.
func (fi FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// IsDir returns true if this is a directory.
func (fi FileInfo) IsDir() bool { return fi.isDir }

// SameContent reports whether two infos describe the same file version, by
// size and modification time.
func (fi FileInfo) SameContent(other FileInfo) bool {
	return fi.size == other.size && fi.modTime.Equal(other.modTime)
}
