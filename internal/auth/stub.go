package auth

import (
	"context"
	"errors"

	"github.com/allandeluna/brainstash/internal/user"
)

var _ AuthService = (*StubService)(nil)

// StubService implements AuthService for handler tests. Unset funcs
// return an error instead of panicking.
type StubService struct {
	SignUpFunc         func(ctx context.Context, params SignUpParams) (user.User, error)
	SignInFunc         func(ctx context.Context, params SignInParams) (user.User, error)
	VerifyEmailFunc    func(ctx context.Context, token string) (user.User, error)
	ForgotPasswordFunc func(ctx context.Context, email string) (user.User, error)
	ResetPasswordFunc  func(ctx context.Context, token, password string) (user.User, error)
	CurrentUserFunc    func(ctx context.Context, userID string) (user.User, error)
}

func (s *StubService) SignUp(ctx context.Context, params SignUpParams) (user.User, error) {
	if s.SignUpFunc == nil {
		return user.User{}, errors.New("SignUp not implemented in stub")
	}
	return s.SignUpFunc(ctx, params)
}

func (s *StubService) SignIn(ctx context.Context, params SignInParams) (user.User, error) {
	if s.SignInFunc == nil {
		return user.User{}, errors.New("SignIn not implemented in stub")
	}
	return s.SignInFunc(ctx, params)
}

func (s *StubService) VerifyEmail(ctx context.Context, token string) (user.User, error) {
	if s.VerifyEmailFunc == nil {
		return user.User{}, errors.New("VerifyEmail not implemented in stub")
	}
	return s.VerifyEmailFunc(ctx, token)
}

func (s *StubService) ForgotPassword(ctx context.Context, email string) (user.User, error) {
	if s.ForgotPasswordFunc == nil {
		return user.User{}, errors.New("ForgotPassword not implemented in stub")
	}
	return s.ForgotPasswordFunc(ctx, email)
}

func (s *StubService) ResetPassword(ctx context.Context, token, password string) (user.User, error) {
	if s.ResetPasswordFunc == nil {
		return user.User{}, errors.New("ResetPassword not implemented in stub")
	}
	return s.ResetPasswordFunc(ctx, token, password)
}

func (s *StubService) CurrentUser(ctx context.Context, userID string) (user.User, error) {
	if s.CurrentUserFunc == nil {
		return user.User{}, errors.New("CurrentUser not implemented in stub")
	}
	return s.CurrentUserFunc(ctx, userID)
}
