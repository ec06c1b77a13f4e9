// Package report prints migration progress and the final summary.
//
// Output is meant for people reading a terminal, not for scripts.
package report

import (
	"fmt"
	"io"
)

// Reporter records changed files and failures and prints them to w.
type Reporter struct {
	w       io.Writer
	updated []string
	errors  int
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Updated announces a changed file by its root-relative path.
func (r *Reporter) Updated(rel string) {
	r.updated = append(r.updated, rel)
	fmt.Fprintf(r.w, "✓ Updated: %s\n", rel)
}

// Failed announces a file that could not be processed.
func (r *Reporter) Failed(path string, err error) {
	r.errors++
	fmt.Fprintf(r.w, "Error processing %s: %v\n", path, err)
}

// Summary prints the changed-file tally and, when non-zero, the list of
// changed files in the order they were reported.
func (r *Reporter) Summary() {
	fmt.Fprintf(r.w, "\n✅ Total files updated: %d\n", len(r.updated))
	if len(r.updated) == 0 {
		return
	}
	fmt.Fprintln(r.w, "\nUpdated files:")
	for _, rel := range r.updated {
		fmt.Fprintf(r.w, "  - %s\n", rel)
	}
}

// Count returns the number of changed files.
func (r *Reporter) Count() int {
	return len(r.updated)
}

// Files returns the changed files in report order.
func (r *Reporter) Files() []string {
	return append([]string(nil), r.updated...)
}

// Errors returns the number of failed files.
func (r *Reporter) Errors() int {
	return r.errors
}
