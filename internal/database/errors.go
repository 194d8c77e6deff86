package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Domain error kinds. Every failure is classified into one of these before
// it crosses into the HTTP layer; handlers choose status codes from the
// kind alone, never from the driver's error text.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
)

// IsNotFound reports whether err is a zero-rows lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsInvalidVehicleType reports whether err names a missing vehicle type.
func IsInvalidVehicleType(err error) bool {
	return errors.Is(err, ErrInvalidVehicleType)
}

// ClassifyError translates a raw gorm/sqlite failure into a domain error
// kind. Unique violations are detected by the sqlite message pattern, the
// same check the storage layer has always relied on. Anything else is a
// storage error wrapped with its operation name.
func ClassifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateKey
	}
	return fmt.Errorf("%s: %w", op, err)
}
