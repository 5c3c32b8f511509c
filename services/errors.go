package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrIllegalTransition  = errors.New("order status is final and cannot be changed")
	ErrMapLink            = errors.New("unable to parse latitude/longitude from maps link")
	ErrConflict           = errors.New("conflict")
	ErrDeleteItems        = errors.New("deleting order items failed")
	ErrPartialDelete      = errors.New("order items deleted but the order could not be removed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// notFound turns gorm's record-not-found into ErrNotFound and passes anything else through.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

// for delete paths that learn about a missing row from RowsAffected
var gormNotFound = gorm.ErrRecordNotFound
