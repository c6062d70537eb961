package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinerank-auth/internal/adaptor"
	"cinerank-auth/internal/data/repository"
	"cinerank-auth/internal/dto/request"
	"cinerank-auth/internal/dto/response"
	"cinerank-auth/internal/usecase"
	"cinerank-auth/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSchema struct{ calls int }

func (s *countingSchema) Ensure(ctx context.Context) error {
	s.calls++
	return nil
}

type stubOTPService struct{}

func (stubOTPService) Request(ctx context.Context, req *request.RequestOTP) (*response.OTPResponse, error) {
	return &response.OTPResponse{OK: true, DevCode: "123456"}, nil
}

func (stubOTPService) Verify(ctx context.Context, req *request.VerifyOTP) (*response.OTPResponse, error) {
	return &response.OTPResponse{OK: true}, nil
}

type stubUserService struct{}

func (stubUserService) Upsert(ctx context.Context, req *request.UpsertUserRequest) (*response.UserResponse, error) {
	return &response.UserResponse{ID: req.ID, Genres: []string{}}, nil
}

func (stubUserService) Lookup(ctx context.Context, key request.LookupUser) (*response.UserResponse, error) {
	return nil, nil
}

func (stubUserService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.UserResponse, error) {
	return &response.UserResponse{ID: "guest_1", Genres: []string{}}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *countingSchema) {
	t.Helper()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema := &countingSchema{}
	repo := &repository.Repository{DB: pool, Schema: schema}
	handler := adaptor.NewHandler(&usecase.Service{OTP: stubOTPService{}, User: stubUserService{}}, zap.NewNop())
	config := &utils.Config{CORS: utils.CORSConfig{AllowedOrigins: []string{"*"}}}

	return setupRouter(handler, repo, config, zap.NewNop()), schema
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestRouter_Routes(t *testing.T) {
	router, schema := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/api/auth-otp", `{"action":"request","email":"ann@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"devCode":"123456"}`, rec.Body.String())

	rec = serve(router, http.MethodPost, "/api/users", `{"id":"u1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/api/users?id=u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))

	rec = serve(router, http.MethodPost, "/api/users/sign-in", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, schema.calls)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/auth-otp", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/api/users", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/movies", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
