package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer token identifying the chat user on whose behalf a bot
// gateway calls the API.
//
// The "sub" claim holds the chat user id in decimal form. UserID caches the
// parsed value once [Token.GetUserID] has succeeded.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	if t.UserID != 0 {
		return t.UserID, nil
	}

	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	t.UserID = userID
	return userID, nil
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
