package account

import "errors"

var (
	ErrAccountNotFound  = errors.New("Account not found")
	ErrSettingsNotFound = errors.New("Company settings not found")
	ErrInvalidLogo      = errors.New("Invalid logo file")
)
