package store

// ErrorClass is the result of [ErrorClassifier.Classify].
type ErrorClass int

const (
	// ClassOther covers every failure the repository cannot act upon.
	ClassOther ErrorClass = iota

	// ClassUniqueViolation means a unique index rejected the write.
	ClassUniqueViolation

	// ClassTransient means the same statement may succeed later
	// (lost connection, busy or locked database, serialization failure).
	// The store never retries; the class is only reported.
	ClassTransient
)

// String implements [fmt.Stringer].
func (c ErrorClass) String() string {
	switch c {
	case ClassUniqueViolation:
		return "unique_violation"
	case ClassTransient:
		return "transient"
	default:
		return "other"
	}
}

// ErrorClassifier maps a driver error to an [ErrorClass]. Each backend
// inspects its own error type.
type ErrorClassifier interface {
	Classify(err error) ErrorClass
}
