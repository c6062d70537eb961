package entity

import (
	"strings"
	"time"
)

// PhoneTargetPrefix marks a target as a phone number so it can never collide
// with an email address.
const PhoneTargetPrefix = "tel:"

// OTPValidity is how long an issued code can be verified.
const OTPValidity = 5 * time.Minute

type OTP struct {
	BaseSerial
	Target    string    `db:"target"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	Consumed  bool      `db:"consumed"`
}

// ExpiredAt reports whether the code is no longer usable at now. The expiry
// instant itself already counts as expired.
func (o *OTP) ExpiredAt(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// IsPhoneTarget reports whether target was derived from a phone number.
func IsPhoneTarget(target string) bool {
	return strings.HasPrefix(target, PhoneTargetPrefix)
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// EmailTarget normalizes an email address into an OTP target.
func EmailTarget(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// PhoneTarget normalizes a phone number into an OTP target. Formatting
// separators are dropped, a leading + is kept. Empty input yields "".
func PhoneTarget(phone string) string {
	p := phoneSeparators.Replace(strings.TrimSpace(phone))
	if p == "" {
		return ""
	}
	return PhoneTargetPrefix + p
}

// DeriveTarget picks the OTP target for a contact pair, email first.
func DeriveTarget(email, phone string) string {
	if t := EmailTarget(email); t != "" {
		return t
	}
	return PhoneTarget(phone)
}
