package adaptor

import (
	"net/http"
	"strings"

	"cinerank-auth/internal/dto/request"
	"cinerank-auth/internal/usecase"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

type OTPHandler struct {
	service usecase.OTPService
	log     *zap.Logger
}

func NewOTPHandler(service usecase.OTPService, log *zap.Logger) *OTPHandler {
	return &OTPHandler{
		service: service,
		log:     log,
	}
}

// Handle handles POST /api/auth-otp, dispatching on the action field.
func (h *OTPHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req request.OTPActionRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	target := req.Target()
	if req.Action == "" || target == "" {
		utils.ResponseBadRequest(w, "action and email or phone are required", "")
		return
	}

	switch req.Action {
	case request.ActionRequest:
		resp, err := h.service.Request(r.Context(), &request.RequestOTP{Target: target})
		if err != nil {
			handleServiceError(w, h.log, err, "Failed to create OTP")
			return
		}
		utils.ResponseSuccess(w, resp)

	case request.ActionVerify:
		code := strings.TrimSpace(req.Code)
		if code == "" {
			utils.ResponseBadRequest(w, "code required", "")
			return
		}

		resp, err := h.service.Verify(r.Context(), &request.VerifyOTP{Target: target, Code: code})
		if err != nil {
			handleServiceError(w, h.log, err, "Failed to verify OTP")
			return
		}
		utils.ResponseSuccess(w, resp)

	default:
		h.log.Warn("Unknown OTP action", zap.String("action", req.Action))
		utils.ResponseBadRequest(w, "Unknown action", "")
	}
}
