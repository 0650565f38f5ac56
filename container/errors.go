package container

import (
	"errors"
	"fmt"

	"github.com/signadot/recordkit/omap"
)

var (
	ErrUnknownField        = errors.New("unknown field")
	ErrKeyNotFound         = omap.ErrKeyNotFound
	ErrFlattenKeyCollision = errors.New("flatten key collision")
	ErrSelfContainment     = errors.New("record contains itself")
	ErrMaxDepth            = errors.New("maximum nesting depth exceeded")
	ErrFieldKind           = errors.New("wrong field kind")
	ErrDuplicateField      = errors.New("duplicate field")
	ErrEmptyFieldName      = errors.New("empty field name")
)

// KeyError reports a map lookup of an absent key.
type KeyError = omap.KeyError

// FieldError identifies the record type and field an error refers to.
type FieldError struct {
	Type    string
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Type == "" {
		return fmt.Sprintf("field %q: %s", e.Field, msg)
	}
	return fmt.Sprintf("%s.%s: %s", e.Type, e.Field, msg)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CollisionError reports two distinct paths flattening to the same key.
type CollisionError struct {
	Key   string
	Paths [2]string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %q from %s and %s", ErrFlattenKeyCollision, e.Key, e.Paths[0], e.Paths[1])
}

func (e *CollisionError) Unwrap() error {
	return ErrFlattenKeyCollision
}

// PathError locates an error at a path within a record tree.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
