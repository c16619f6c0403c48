package core

import (
	"errors"
	"fmt"
)

var ErrInvalidIssueFormat = errors.New("invalid issue format")

type InvalidIssueFormatError struct {
	Input string
}

func (e *InvalidIssueFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidIssueFormat, e.Input)
}

func (e *InvalidIssueFormatError) Unwrap() error {
	return ErrInvalidIssueFormat
}
