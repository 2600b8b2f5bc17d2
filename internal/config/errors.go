package config

import (
	"errors"
	"fmt"
)

// Error kinds returned by Load. Use errors.Is to test for them.
var (
	ErrSourceUnreadable = errors.New("config source unreadable")
	ErrSchemaMismatch   = errors.New("config schema mismatch")
	ErrMissingField     = errors.New("missing required field")
)

// LoadError ties a load failure to the file it came from.
type LoadError struct {
	Kind error // ErrSourceUnreadable or ErrSchemaMismatch
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Is reports whether target is the error kind.
func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingFieldError names a required key that has no value.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func unreadable(path string, err error) error {
	return &LoadError{Kind: ErrSourceUnreadable, Path: path, Err: err}
}

func mismatch(path string, err error) error {
	return &LoadError{Kind: ErrSchemaMismatch, Path: path, Err: err}
}
