// Package searchpath resolves program names against an ordered,
// colon-separated list of directories. The first entry containing an
// existing regular file with the requested name wins.
package searchpath

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SearchPath is an ordered list of directories scanned left to right.
// Order is significant and duplicates are kept.
type SearchPath []string

// Parse splits a colon-separated path value into a SearchPath. Empty
// segments are kept; joining them with a name yields a path relative to
// the current directory, matching shell semantics.
func Parse(value string) SearchPath {
	return SearchPath(filepath.SplitList(value))
}

// FileStater abstracts stat for testability.
type FileStater interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileStater implements FileStater using the actual file system.
type RealFileStater struct{}

// Stat returns file info for the given path.
func (r *RealFileStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// NotFoundError reports that a program exists in no search path entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s in given path", e.Name)
}

// Resolver looks up program names in a SearchPath.
type Resolver struct {
	Path SearchPath
	FS   FileStater // injected for testing
}

// Resolve returns the first candidate directory/name that exists as a
// regular file. Symlinks are followed; directories never match. The
// lookup is a snapshot of the file system with no side effects. Returns
// *NotFoundError when no entry matches, including when Path is empty.
func (r *Resolver) Resolve(name string) (string, error) {
	for _, dir := range r.Path {
		candidate := filepath.Join(dir, name)
		info, err := r.FS.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return candidate, nil
	}
	return "", &NotFoundError{Name: name}
}
