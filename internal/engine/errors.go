package engine

import (
	"errors"
	"fmt"
)

// NotFoundError covers absent entities and ownership mismatches; a caller
// probing someone else's character learns nothing beyond "not found".
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e NotFoundError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// ValidationError covers out-of-range input and illegal state transitions.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// CapacityError indicates a per-user quota is exhausted.
type CapacityError struct {
	Resource string
	Limit    int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("too many %s (limit %d)", e.Resource, e.Limit)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var ce CapacityError
	return errors.As(err, &ce)
}

func validationf(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}
