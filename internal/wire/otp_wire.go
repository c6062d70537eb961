package wire

import (
	"cinerank-auth/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOTP(r chi.Router, otpHandler *adaptor.OTPHandler) {
	// POST /api/auth-otp {action: "request" | "verify"}
	r.Post("/auth-otp", otpHandler.Handle)
}
