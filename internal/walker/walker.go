// Package walker enumerates candidate files under a root directory.
package walker

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	apperrors "fantasybasket.io/replace-errors/internal/pkg/errors"
)

// Suffix is the case-sensitive file name suffix of a candidate file.
const Suffix = "Handler.cs"

// IsCandidate reports whether name is a candidate file name.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, Suffix)
}

// linksToDir reports whether the symlink at path resolves to a directory.
// Such links are listed as directories, never as files; they are not
// descended into either. A dangling link is left to the caller as a file.
func linksToDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Candidates lazily yields every non-directory entry under root whose base
// name ends with Suffix. No directory is excluded and depth is unbounded.
//
// A subtree that cannot be read is yielded as an error and the walk moves on
// to the next entry. Stopping the iteration stops the walk.
func Candidates(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				walkErr := apperrors.Wrap(err, apperrors.CodeWalk, "walk directory").
					WithParams(map[string]interface{}{"path": path})
				if !yield(path, walkErr) {
					return filepath.SkipAll
				}
				return nil
			}
			if d.IsDir() || !IsCandidate(d.Name()) {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 && linksToDir(path) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
