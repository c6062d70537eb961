package adaptor

import (
	"context"

	"cinerank-auth/internal/dto/request"
	"cinerank-auth/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockOTPService struct {
	mock.Mock
}

func (m *mockOTPService) Request(ctx context.Context, req *request.RequestOTP) (*response.OTPResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*response.OTPResponse)
	return resp, args.Error(1)
}

func (m *mockOTPService) Verify(ctx context.Context, req *request.VerifyOTP) (*response.OTPResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*response.OTPResponse)
	return resp, args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Upsert(ctx context.Context, req *request.UpsertUserRequest) (*response.UserResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*response.UserResponse)
	return resp, args.Error(1)
}

func (m *mockUserService) Lookup(ctx context.Context, key request.LookupUser) (*response.UserResponse, error) {
	args := m.Called(key)
	resp, _ := args.Get(0).(*response.UserResponse)
	return resp, args.Error(1)
}

func (m *mockUserService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.UserResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*response.UserResponse)
	return resp, args.Error(1)
}
