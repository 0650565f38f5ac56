package schema

import (
	"errors"
	"fmt"
)

var (
	ErrSchema      = errors.New("schema error")
	ErrUnknownType = errors.New("unknown type")
	ErrDuplicate   = errors.New("duplicate type")
)

// Error locates a schema or decoding error.
type Error struct {
	Type    string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	err := e.Err
	if err == nil {
		err = ErrSchema
	}
	loc := ""
	switch {
	case e.Type != "" && e.Field != "":
		loc = fmt.Sprintf(" in %s.%s", e.Type, e.Field)
	case e.Type != "":
		loc = fmt.Sprintf(" in %s", e.Type)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s%s", err, loc)
	}
	return fmt.Sprintf("%s%s: %s", err, loc, e.Message)
}

func (e *Error) Unwrap() error {
	if e.Err == nil {
		return ErrSchema
	}
	return e.Err
}
