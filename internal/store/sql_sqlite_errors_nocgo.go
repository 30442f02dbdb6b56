//go:build !cgo

package store

// mattnErrorClassifier is inert without cgo: the "sqlite3" driver cannot
// open a database in such builds, so there is nothing to classify.
type mattnErrorClassifier struct{}

func (mattnErrorClassifier) Classify(error) ErrorClass {
	return ClassOther
}
