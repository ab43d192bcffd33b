package slcan

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidBitrate  = errors.New("invalid bitrate code")
	ErrInvalidDLC      = errors.New("invalid data length code")
	ErrIdentifierRange = errors.New("identifier out of range")
	ErrDataTooLong     = errors.New("data exceeds 8 bytes")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
)

// ParseError describes where a command line stopped matching the
// grammar: the field being parsed, what the grammar expected there and
// what was actually found.
type ParseError struct {
	Field    string
	Expected string
	Found    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: expected %s, found %q: %v", e.Field, e.Expected, e.Found, e.Err)
	}
	return fmt.Sprintf("parse %s: expected %s, found %q", e.Field, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
