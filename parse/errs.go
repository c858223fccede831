package parse

import "errors"

// ErrInvalidInput wraps every parse failure: blank input, syntactically
// invalid text, or constructs the IR cannot hold. Callers surface it
// unmodified; there is no partial-output recovery.
var ErrInvalidInput = errors.New("invalid input")
