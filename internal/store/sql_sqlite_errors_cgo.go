//go:build cgo

package store

import (
	"errors"

	mattn "github.com/mattn/go-sqlite3"
)

// mattnErrorClassifier implements [ErrorClassifier] for the cgo "sqlite3"
// driver.
type mattnErrorClassifier struct{}

func (mattnErrorClassifier) Classify(err error) ErrorClass {
	var sqliteErr mattn.Error
	if !errors.As(err, &sqliteErr) {
		return ClassOther
	}

	switch sqliteErr.ExtendedCode {
	case mattn.ErrConstraintUnique, mattn.ErrConstraintPrimaryKey:
		return ClassUniqueViolation
	}

	switch sqliteErr.Code {
	case mattn.ErrBusy, mattn.ErrLocked:
		return ClassTransient
	}

	return ClassOther
}
