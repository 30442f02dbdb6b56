package client

import "errors"

var (
	ErrMissingUserID  = errors.New("remote mode needs a positive -user id")
	ErrMissingSignKey = errors.New("remote mode needs a token sign key")
	ErrClipboard      = errors.New("could not copy to clipboard")
	ErrNoPasswords    = errors.New("source returned no passwords")
)
