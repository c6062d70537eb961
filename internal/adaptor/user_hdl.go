package adaptor

import (
	"net/http"
	"strings"

	"cinerank-auth/internal/dto/request"
	"cinerank-auth/internal/usecase"
	"cinerank-auth/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Upsert handles POST /api/users
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertUserRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		utils.ResponseBadRequest(w, "id required", "")
		return
	}

	user, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "Failed to upsert user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// Lookup handles GET /api/users?id=|email=|username=
// A miss answers 200 with a null body.
func (h *UserHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	key, ok := request.NewLookupUser(query.Get("id"), query.Get("email"), query.Get("username"))
	if !ok {
		utils.ResponseBadRequest(w, "id or email or username required", "")
		return
	}

	user, err := h.service.Lookup(r.Context(), key)
	if err != nil {
		handleServiceError(w, h.log, err, "Failed to fetch user")
		return
	}

	if user == nil {
		utils.ResponseSuccess(w, nil)
		return
	}
	utils.ResponseSuccess(w, user)
}

// SignIn handles POST /api/users/sign-in
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", err.Error())
		return
	}

	user, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "Failed to upsert user")
		return
	}

	utils.ResponseSuccess(w, user)
}
