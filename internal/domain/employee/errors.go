package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// DeletionDeniedError carries the reason a hard delete was refused, for
// display to the user.
type DeletionDeniedError struct {
	Reason string
}

func (e *DeletionDeniedError) Error() string {
	return e.Reason
}
