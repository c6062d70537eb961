package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cinerank-auth/internal/data/entity"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

// otpFailures are reported to the client verbatim.
var otpFailures = []error{
	entity.ErrOTPNotRequested,
	entity.ErrOTPAlreadyUsed,
	entity.ErrOTPExpired,
	entity.ErrOTPInvalid,
}

// decodeBody decodes a JSON body into dst. An empty body leaves dst zeroed.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// handleServiceError maps service errors onto responses. failure is the
// message used for infrastructure errors, e.g. "Failed to create OTP".
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, failure string) {
	for _, reason := range otpFailures {
		if errors.Is(err, reason) {
			utils.ResponseBadRequest(w, reason.Error(), "")
			return
		}
	}

	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(failure+" - validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", err.Error())

	case errors.Is(err, entity.ErrConflict):
		log.Warn(failure+" - conflict", zap.Error(err))
		utils.ResponseConflict(w, failure, err.Error())

	default:
		log.Error(failure, zap.Error(err))
		utils.ResponseInternalError(w, failure, err.Error())
	}
}
