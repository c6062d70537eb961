package entity

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")

	ErrOTPNotRequested = errors.New("No OTP requested")
	ErrOTPAlreadyUsed  = errors.New("OTP already used")
	ErrOTPExpired      = errors.New("OTP expired")
	ErrOTPInvalid      = errors.New("Invalid code")
)
