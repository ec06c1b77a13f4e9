// Package rewriter applies the substitution table to a single file and
// writes the result back in place when, and only when, it changed.
package rewriter

import (
	"os"

	apperrors "fantasybasket.io/replace-errors/internal/pkg/errors"
)

// Applier transforms file text. *substitution.Table satisfies it.
type Applier interface {
	Apply(text string) string
}

// FileRecord is the outcome of rewriting one file.
type FileRecord struct {
	Path     string
	Original string
	Updated  string
	Changed  bool
}

// Rewriter rewrites candidate files. It keeps no state between files.
type Rewriter struct {
	table Applier
	codec Codec
}

// New creates a Rewriter. A nil codec selects UTF8.
func New(table Applier, codec Codec) *Rewriter {
	if codec == nil {
		codec = UTF8
	}
	return &Rewriter{table: table, codec: codec}
}

// Rewrite reads path, applies the table and overwrites the file if the text
// changed. An unchanged file is never opened for writing, so its bytes and
// modification time stay as they were. There is no backup copy.
//
// Errors are *errors.AppError values carrying the path; the file is left
// untouched on any read or decode failure.
func (r *Rewriter) Rewrite(path string) (*FileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.ErrFileRead(path, err)
	}

	original, err := r.codec.Decode(data)
	if err != nil {
		return nil, apperrors.ErrFileDecode(path, err)
	}

	rec := &FileRecord{
		Path:     path,
		Original: original,
		Updated:  r.table.Apply(original),
	}
	if rec.Updated == rec.Original {
		return rec, nil
	}

	out, err := r.codec.Encode(rec.Updated)
	if err != nil {
		return nil, apperrors.ErrFileEncode(path, err)
	}
	// WriteFile truncates an existing file and keeps its permission bits.
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return nil, apperrors.ErrFileWrite(path, err)
	}

	rec.Changed = true
	return rec, nil
}
