// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DecryptionFailedMarker replaces the secret of a record that could not be
// decrypted. The record itself is still returned.
const DecryptionFailedMarker = "[decryption failed]"

// CredentialRecord is one row of the passwords table.
// EncryptedSecret is opaque to the store and must never be logged.
type CredentialRecord struct {
	// ID is the auto-incremented row identifier.
	ID int64

	// UserID is the chat user owning the record.
	UserID int64

	// Account is the user-supplied label, unique per user.
	Account string

	// EncryptedSecret is the stored token. Column encrypted_password.
	EncryptedSecret string

	// CreatedAt is set once on insert. Column date_added.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the CredentialRecord model.
func (CredentialRecord) TableName() string {
	return "passwords"
}

// Credential is a decrypted record as returned to callers.
type Credential struct {
	Account   string    `json:"account"`
	Secret    string    `json:"secret"`
	CreatedAt time.Time `json:"created_at"`

	// DecryptionFailed is set when Secret holds [DecryptionFailedMarker]
	// instead of the real value.
	DecryptionFailed bool `json:"decryption_failed"`
}

// SaveCredentialRequest asks the vault to store a new secret under account.
// UserID is taken from the authenticated request, never from the body.
type SaveCredentialRequest struct {
	UserID  int64  `json:"-"`
	Account string `json:"account"`
	Secret  string `json:"secret"`
}

// ExistsResponse answers an existence check.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// AccountQuery identifies one account label of one user.
type AccountQuery struct {
	UserID  int64
	Account string
}
