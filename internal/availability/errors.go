package availability

import (
	"errors"
	"strings"
)

var (
	ErrMalformedDocument  = errors.New("malformed availability request")
	ErrMissingCredentials = errors.New("missing credentials")
)

// ParseError is returned when the request is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return ErrMalformedDocument.Error() + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// MissingCredentialsError is returned when the credentials parameter or any of its attributes is absent.
// Fields is empty when the whole element is missing.
type MissingCredentialsError struct {
	Fields []string
}

func (e *MissingCredentialsError) Error() string {
	if len(e.Fields) == 0 {
		return "Missing required parameters: password, username, or CompanyID"
	}

	return "Missing required parameters: " + strings.Join(e.Fields, ", ")
}

func (e *MissingCredentialsError) Is(target error) bool {
	return target == ErrMissingCredentials
}
