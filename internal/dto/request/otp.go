package request

import "cinerank-auth/internal/data/entity"

const (
	ActionRequest = "request"
	ActionVerify  = "verify"
)

// OTPActionRequest is the raw body of the OTP endpoint. It is narrowed into
// RequestOTP or VerifyOTP before it reaches the service.
type OTPActionRequest struct {
	Action string `json:"action"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Code   string `json:"code,omitempty"`
}

// Target derives the normalized OTP target, email first.
func (r *OTPActionRequest) Target() string {
	return entity.DeriveTarget(r.Email, r.Phone)
}

type RequestOTP struct {
	Target string `validate:"notblank"`
}

type VerifyOTP struct {
	Target string `validate:"notblank"`
	Code   string `validate:"notblank"`
}
