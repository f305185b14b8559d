package apperrors

import "fmt"

// ErrNotFound represents an error when a requested catalog resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when the catalog does not know a show.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUnexpectedStatus is returned when the catalog answers with a non-success HTTP status.
type ErrUnexpectedStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("catalog returned status %d for %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}

// ErrInvalidShowID is returned when a show identifier attached to the page cannot be resolved.
type ErrInvalidShowID struct {
	Raw string
}

// Error implements the error interface.
func (e *ErrInvalidShowID) Error() string {
	if e.Raw == "" {
		return "no show ID attached to the element"
	}
	return fmt.Sprintf("invalid show ID %q", e.Raw)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidShowID) Is(target error) bool {
	_, ok := target.(*ErrInvalidShowID)
	return ok
}
