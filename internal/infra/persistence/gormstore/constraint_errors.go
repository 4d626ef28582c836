package gormstore

import (
	"strings"

	domainerrors "pumpdesk/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for constraint error checking. Both drivers translate
// unique and foreign key violations into GORM sentinel errors; the message
// checks cover statements that bypass translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// translateWriteError converts a failed insert or update into a domain error.
func translateWriteError(err error, conflict *domainerrors.BaseError, action string) error {
	switch {
	case isUniqueConstraintViolation(err):
		if conflict == nil {
			conflict = domainerrors.ErrConflict
		}

		return conflict.WrapMessage(action)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrInvalidReference.WrapMessage(action)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}
