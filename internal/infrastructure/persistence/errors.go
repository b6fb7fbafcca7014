package persistence

import (
	"errors"

	"github.com/campaign/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// notFound maps gorm.ErrRecordNotFound to a domain not-found error with msg
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(msg)
	}
	return err
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
