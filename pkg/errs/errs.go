// Package errs holds the error kinds shared by the fee calculator, the
// fingerprint helpers and the spell store. Call sites wrap one of these
// sentinels with fmt.Errorf("%w: ...") so callers can test with errors.Is.
package errs

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
