package store

import "errors"

var (
	// ErrNotFound: referenced student, notice, menu item, book, order or checkout is absent.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: a student with the same normalized key exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrPersist: the document could not be written; the mutation was not applied.
	ErrPersist = errors.New("persist store")
	// ErrInvalidInput: a required identifier (such as the student name) is blank.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNothingPending: an online checkout was requested with no outstanding fee.
	ErrNothingPending = errors.New("nothing pending")

	// returned by a mutation that found nothing to change; never escapes update
	errUnchanged = errors.New("unchanged")
)
