package service

import (
	"errors"
	"fmt"
)

var (
	// Website errors
	ErrWebsiteNotFound    = errors.New("website not found")
	ErrDomainTaken        = errors.New("domain already exists")
	ErrInvalidCredentials = errors.New("invalid secret key or UUID")

	// Form errors
	ErrFormNotFound = errors.New("form not found")

	// Submission errors
	ErrInvalidPayload = errors.New("invalid JSON body")
)

// OriginMismatchError reports a submission whose Origin hostname does not
// match the website's registered domain. Both hostnames are carried so the
// response can name them.
type OriginMismatchError struct {
	Origin string // hostname computed from the Origin header
	Domain string // normalized hostname of the stored domain
}

func (e *OriginMismatchError) Error() string {
	return fmt.Sprintf("Forbidden: Origin domain mismatch (%s != %s)", e.Origin, e.Domain)
}
