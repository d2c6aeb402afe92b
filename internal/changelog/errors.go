package changelog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch is returned by removal when the filters match no pending
// entries. It is reported to the user but never aborts the process.
var ErrNoMatch = errors.New("no changes matched the removal filters")

// ErrNoPendingChanges is returned when a release is attempted while the
// pending store is empty. A release with no content is rejected.
var ErrNoPendingChanges = errors.New("no unreleased changes to release")

// InvalidCategoryError indicates a change category outside the closed
// six-value set.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	valid := make([]string, 0, len(Categories()))
	for _, c := range Categories() {
		valid = append(valid, string(c))
	}
	return fmt.Sprintf("unsupported change category %q (valid: %s)",
		e.Category, strings.Join(valid, ", "))
}

// ReleaseExistsError indicates a release record already exists for the
// requested version. Re-running an interrupted release fails here
// instead of silently overwriting the captured record.
type ReleaseExistsError struct {
	Version string
	Path    string
}

func (e *ReleaseExistsError) Error() string {
	return fmt.Sprintf("release %s already captured at %s", e.Version, e.Path)
}
