package colormath

import "fmt"

// ErrorKind classifies validation failures.
type ErrorKind string

const (
	// InvalidColorFormat is reported for anything that is not "#RRGGBB".
	InvalidColorFormat ErrorKind = "InvalidColorFormat"
)

// ValidationError is returned when an input color cannot be converted.
type ValidationError struct {
	Kind  ErrorKind
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q is not a #RRGGBB color", e.Kind, e.Input)
}

func invalidColor(input string) error {
	return &ValidationError{Kind: InvalidColorFormat, Input: input}
}
