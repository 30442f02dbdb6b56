package models

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`

	// Kind tells clients whether retrying may help:
	// "caller", "transient", "integrity" or "internal".
	Kind string `json:"kind"`
}
