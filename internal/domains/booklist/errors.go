package booklist

import "errors"

var (
	// ErrListExists signals a duplicate list name on create.
	ErrListExists = errors.New("curated list already exists")

	// ErrListNotFound signals an unknown list id on update or delete.
	ErrListNotFound = errors.New("curated list does not exist")

	// ErrListMissing signals that a pick references a list id with no
	// backing list.
	ErrListMissing = errors.New("the specified list does not exist")

	// ErrPickExists signals that a book is already picked, on any list.
	// It is usually wrapped in a PickConflictError carrying the existing
	// pick.
	ErrPickExists = errors.New("curated pick already exists")

	// ErrPickNotFound signals an unknown pick ISBN on update or delete.
	ErrPickNotFound = errors.New("curated pick does not exist")

	// ErrInvalidPickID signals a pick id path segment that is neither a
	// valid ISBN-10 nor a valid ISBN-13.
	ErrInvalidPickID = errors.New("incorrect pick id format")

	// ErrInvalidPosition signals a position below 1.
	ErrInvalidPosition = errors.New("invalid position value")

	// ErrListIDRequired signals a picks query without a list_id filter.
	ErrListIDRequired = errors.New("list id is required")
)

// PickConflictError reports the pick that already claims the requested
// book, so callers can include it in the conflict response.
type PickConflictError struct {
	Existing *CuratedPick
}

func (e *PickConflictError) Error() string {
	return "curated pick '" + e.Existing.String() + "' already exists"
}

func (e *PickConflictError) Is(target error) bool {
	return target == ErrPickExists
}
