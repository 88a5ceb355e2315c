package sharing

import "errors"

var (
	// ErrNotFound means the referenced collection/recipe/ingredient does not
	// exist. Distinct from ErrAccessDenied; redaction is the caller's job.
	ErrNotFound = errors.New("resource not found")

	// ErrAccessDenied means the household has no access to the source
	// resource at all. Terminal for the request.
	ErrAccessDenied = errors.New("access denied")

	// ErrConflict means a uniqueness violation during a duplicate-fork race.
	// Transient: the caller should retry, which lands on the short-circuit
	// lookup of the winner's fork.
	ErrConflict = errors.New("duplicate fork conflict")
)
