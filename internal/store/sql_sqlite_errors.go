package store

import (
	"errors"

	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// moderncErrorClassifier implements [ErrorClassifier] for the pure Go
// "sqlite" driver.
type moderncErrorClassifier struct{}

func (moderncErrorClassifier) Classify(err error) ErrorClass {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return ClassOther
	}

	switch sqliteErr.Code() {
	case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ClassUniqueViolation
	case sqlitelib.SQLITE_BUSY, sqlitelib.SQLITE_LOCKED:
		return ClassTransient
	}

	return ClassOther
}
