package validators

import "errors"

const (
	passwordMinLen = 8
	passwordMaxLen = 255
)

var (
	ErrPasswordEmpty    = errors.New("no password provided")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password is too long")
)

// PasswordValidator bounds the plaintext length. Length is counted in bytes,
// matching what the hasher receives
func PasswordValidator(p string) error {
	switch {
	case p == "":
		return ErrPasswordEmpty
	case len(p) < passwordMinLen:
		return ErrPasswordTooShort
	case len(p) > passwordMaxLen:
		return ErrPasswordTooLong
	}

	return nil
}
