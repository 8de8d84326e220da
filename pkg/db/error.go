package db

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrStorageUnavailable signals that the backing database file could
	// not be opened or created.
	ErrStorageUnavailable = errors.New("storage_unavailable")

	// ErrNotFound signals that an id-keyed operation matched no row.
	ErrNotFound = errors.New("not_found")
)

func IsNotFoundErr(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
