// Package walker enumerates candidate script files under a root path.
// It yields only regular files carrying at least one executable
// permission bit; everything else is left to other tools.
package walker

import (
	"io/fs"
	"path/filepath"
)

// WalkFunc is called once per candidate file, in traversal order.
type WalkFunc func(path string, info fs.FileInfo) error

// Walk descends root recursively and calls fn for every regular file with
// an executable bit set for some principal. The first error, whether from
// the traversal or from fn, aborts the walk.
func Walk(root string, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Mode().Perm()&0o111 == 0 {
			return nil
		}
		return fn(path, info)
	})
}
