// Package validators holds the field checks the account handlers run on
// incoming registration data, kept apart from the handler code
package validators

import (
	"errors"
	"net/mail"
)

const emailMaxLen = 254

var (
	ErrEmailEmpty   = errors.New("no email address provided")
	ErrEmailTooLong = errors.New("email address is too long")
	ErrEmailInvalid = errors.New("invalid email address provided")
)

func EmailValidator(e string) error {
	if e == "" {
		return ErrEmailEmpty
	}

	if len(e) > emailMaxLen {
		return ErrEmailTooLong
	}

	addr, err := mail.ParseAddress(e)
	if err != nil {
		return ErrEmailInvalid
	}

	// ParseAddress also accepts the "Name <addr>" form, which is not a
	// valid value for this field
	if addr.Address != e {
		return ErrEmailInvalid
	}

	return nil
}
