package base58

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidCharacterError reports a character that is not part of the alphabet
// a decode was performed against.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base58 character %q", e.Char)
}

// Reserved error kinds, exported for API stability. The arbitrary-precision
// codec never returns them.
var (
	// ErrEmptyInput is reserved; an empty string decodes to an empty buffer.
	ErrEmptyInput = errors.New("empty base58 input")

	// ErrOverflow is reserved for decoders with a bounded accumulator.
	ErrOverflow = errors.New("base58 numeric overflow")
)
