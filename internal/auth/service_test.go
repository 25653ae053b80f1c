package auth_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/allandeluna/brainstash/internal/auth"
	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/pkg/timex"
	"github.com/allandeluna/brainstash/internal/user"
)

// stubRepository implements auth.UserRepository with overridable funcs.
type stubRepository struct {
	createFunc               func(ctx context.Context, params user.CreateUserParams) (user.User, error)
	findByEmailFunc          func(ctx context.Context, email string) (user.User, error)
	findFunc                 func(ctx context.Context, userID string) (user.User, error)
	recordLoginFunc          func(ctx context.Context, userID string) (user.User, error)
	verifyByTokenFunc        func(ctx context.Context, token string) (user.User, error)
	setResetTokenFunc        func(ctx context.Context, email, token string, expires time.Time) (user.User, error)
	resetPasswordByTokenFunc func(ctx context.Context, token, passwordHash string) (user.User, error)
}

func (s *stubRepository) Create(ctx context.Context, params user.CreateUserParams) (user.User, error) {
	return s.createFunc(ctx, params)
}

func (s *stubRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return s.findByEmailFunc(ctx, email)
}

func (s *stubRepository) Find(ctx context.Context, userID string) (user.User, error) {
	return s.findFunc(ctx, userID)
}

func (s *stubRepository) RecordLogin(ctx context.Context, userID string) (user.User, error) {
	return s.recordLoginFunc(ctx, userID)
}

func (s *stubRepository) VerifyByToken(ctx context.Context, token string) (user.User, error) {
	return s.verifyByTokenFunc(ctx, token)
}

func (s *stubRepository) SetResetToken(ctx context.Context, email, token string, expires time.Time) (user.User, error) {
	return s.setResetTokenFunc(ctx, email, token, expires)
}

func (s *stubRepository) ResetPasswordByToken(ctx context.Context, token, passwordHash string) (user.User, error) {
	return s.resetPasswordByTokenFunc(ctx, token, passwordHash)
}

// plainHasher avoids argon2 cost in unit tests.
type plainHasher struct {
	verifyResult bool
}

func (h *plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (h *plainHasher) Verify(_, _ string) (bool, error) { return h.verifyResult, nil }

// nopMailer discards email. The service sends from goroutines, so the
// stub must stay stateless.
type nopMailer struct{}

func (nopMailer) SendPlain(_ []string, _, _ string) error { return nil }

func (nopMailer) SendHTML(_ []string, _, _ string, _ map[string]string) error { return nil }

func newTestService(repo *stubRepository, hasher *plainHasher) *auth.Service {
	cfg := &config.Config{
		Email: &config.Email{
			VerifyTTL: timex.Duration{Duration: 10 * time.Minute},
			ResetTTL:  timex.Duration{Duration: 10 * time.Minute},
		},
	}
	provider := &auth.Providers{Hasher: hasher, Mailer: nopMailer{}}
	return auth.NewService(repo, provider, cfg, "http://localhost:5173")
}

var verificationCodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

func TestService_SignUp(t *testing.T) {
	t.Parallel()

	t.Run("creates the user with a pending verification code", func(t *testing.T) {
		t.Parallel()

		var gotParams user.CreateUserParams
		repo := &stubRepository{
			findByEmailFunc: func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			createFunc: func(_ context.Context, params user.CreateUserParams) (user.User, error) {
				gotParams = params
				return user.User{ID: "u1", Email: params.Email, Name: params.Name}, nil
			},
		}
		svc := newTestService(repo, &plainHasher{})

		u, err := svc.SignUp(t.Context(), auth.SignUpParams{
			Email:    "Jane@Example.COM",
			Password: "s3cretpass",
			Name:     "Jane",
		})
		if err != nil {
			t.Fatalf("SignUp() returned error: %v", err)
		}

		if u.ID != "u1" {
			t.Errorf("user ID = %q, want %q", u.ID, "u1")
		}
		if gotParams.Email != "jane@example.com" {
			t.Errorf("stored email = %q, want lowercased %q", gotParams.Email, "jane@example.com")
		}
		if gotParams.PasswordHash != "hashed:s3cretpass" {
			t.Errorf("stored hash = %q, want the hasher output", gotParams.PasswordHash)
		}
		if !verificationCodePattern.MatchString(gotParams.VerifiedToken) {
			t.Errorf("verification code = %q, want six digits without a leading zero", gotParams.VerifiedToken)
		}
		wantExpiry := time.Now().Add(10 * time.Minute)
		if diff := gotParams.VerifiedTokenExpires.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
			t.Errorf("code expiry = %v, want about %v", gotParams.VerifiedTokenExpires, wantExpiry)
		}
	})

	t.Run("rejects an email that already has an account", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			findByEmailFunc: func(_ context.Context, email string) (user.User, error) {
				if email != "jane@example.com" {
					t.Errorf("looked up email %q, want lowercased %q", email, "jane@example.com")
				}
				return user.User{ID: "u1", Email: email}, nil
			},
		}
		svc := newTestService(repo, &plainHasher{})

		_, err := svc.SignUp(t.Context(), auth.SignUpParams{
			Email:    "JANE@example.com",
			Password: "s3cretpass",
			Name:     "Jane",
		})
		if !errors.Is(err, auth.ErrUserExists) {
			t.Fatalf("SignUp() error = %v, want ErrUserExists", err)
		}
	})

	t.Run("maps a duplicate insert to ErrUserExists", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			findByEmailFunc: func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			createFunc: func(_ context.Context, _ user.CreateUserParams) (user.User, error) {
				return user.User{}, user.ErrDuplicateEmail
			},
		}
		svc := newTestService(repo, &plainHasher{})

		_, err := svc.SignUp(t.Context(), auth.SignUpParams{
			Email:    "jane@example.com",
			Password: "s3cretpass",
			Name:     "Jane",
		})
		if !errors.Is(err, auth.ErrUserExists) {
			t.Fatalf("SignUp() error = %v, want ErrUserExists", err)
		}
	})
}

func TestService_SignIn(t *testing.T) {
	t.Parallel()

	t.Run("records the login on success", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		repo := &stubRepository{
			findByEmailFunc: func(_ context.Context, email string) (user.User, error) {
				if email != "jane@example.com" {
					t.Errorf("looked up email %q, want lowercased %q", email, "jane@example.com")
				}
				return user.User{ID: "u1", Email: email, PasswordHash: "stored"}, nil
			},
			recordLoginFunc: func(_ context.Context, userID string) (user.User, error) {
				return user.User{ID: userID, Email: "jane@example.com", LastLogin: &now}, nil
			},
		}
		svc := newTestService(repo, &plainHasher{verifyResult: true})

		u, err := svc.SignIn(t.Context(), auth.SignInParams{Email: "Jane@Example.com", Password: "s3cretpass"})
		if err != nil {
			t.Fatalf("SignIn() returned error: %v", err)
		}
		if u.LastLogin == nil {
			t.Error("LastLogin should be set after sign-in")
		}
	})

	t.Run("unknown email and wrong password fail alike", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			repo   *stubRepository
			hasher *plainHasher
		}{
			{
				"unknown email",
				&stubRepository{
					findByEmailFunc: func(_ context.Context, _ string) (user.User, error) {
						return user.User{}, user.ErrNotFound
					},
				},
				&plainHasher{verifyResult: true},
			},
			{
				"wrong password",
				&stubRepository{
					findByEmailFunc: func(_ context.Context, email string) (user.User, error) {
						return user.User{ID: "u1", Email: email, PasswordHash: "stored"}, nil
					},
				},
				&plainHasher{verifyResult: false},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				svc := newTestService(tt.repo, tt.hasher)
				_, err := svc.SignIn(t.Context(), auth.SignInParams{Email: "jane@example.com", Password: "whatever"})
				if !errors.Is(err, auth.ErrInvalidCredentials) {
					t.Fatalf("SignIn() error = %v, want ErrInvalidCredentials", err)
				}
			})
		}
	})
}

func TestService_VerifyEmail(t *testing.T) {
	t.Parallel()

	t.Run("returns the verified user", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			verifyByTokenFunc: func(_ context.Context, token string) (user.User, error) {
				if token != "123456" {
					t.Errorf("token = %q, want %q", token, "123456")
				}
				return user.User{ID: "u1", IsVerified: true}, nil
			},
		}
		svc := newTestService(repo, &plainHasher{})

		u, err := svc.VerifyEmail(t.Context(), "123456")
		if err != nil {
			t.Fatalf("VerifyEmail() returned error: %v", err)
		}
		if !u.IsVerified {
			t.Error("user should be verified")
		}
	})

	t.Run("maps an unmatched code to ErrTokenInvalid", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			verifyByTokenFunc: func(_ context.Context, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
		}
		svc := newTestService(repo, &plainHasher{})

		if _, err := svc.VerifyEmail(t.Context(), "000000"); !errors.Is(err, auth.ErrTokenInvalid) {
			t.Fatalf("VerifyEmail() error = %v, want ErrTokenInvalid", err)
		}
	})
}

func TestService_ForgotPassword(t *testing.T) {
	t.Parallel()

	t.Run("attaches a fresh reset token", func(t *testing.T) {
		t.Parallel()

		var gotToken string
		repo := &stubRepository{
			setResetTokenFunc: func(_ context.Context, email, token string, expires time.Time) (user.User, error) {
				if email != "jane@example.com" {
					t.Errorf("email = %q, want lowercased %q", email, "jane@example.com")
				}
				gotToken = token
				return user.User{ID: "u1", Email: email, ResetToken: &token, ResetTokenExpires: &expires}, nil
			},
		}
		svc := newTestService(repo, &plainHasher{})

		u, err := svc.ForgotPassword(t.Context(), "Jane@Example.com")
		if err != nil {
			t.Fatalf("ForgotPassword() returned error: %v", err)
		}
		if gotToken == "" {
			t.Fatal("reset token should not be empty")
		}
		if u.ResetToken == nil || *u.ResetToken != gotToken {
			t.Error("returned user should carry the stored reset token")
		}
	})

	t.Run("passes through an unknown email", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			setResetTokenFunc: func(_ context.Context, _, _ string, _ time.Time) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
		}
		svc := newTestService(repo, &plainHasher{})

		if _, err := svc.ForgotPassword(t.Context(), "ghost@example.com"); !errors.Is(err, user.ErrNotFound) {
			t.Fatalf("ForgotPassword() error = %v, want user.ErrNotFound", err)
		}
	})
}

func TestService_ResetPassword(t *testing.T) {
	t.Parallel()

	t.Run("stores the new hash", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			resetPasswordByTokenFunc: func(_ context.Context, token, passwordHash string) (user.User, error) {
				if token != "reset-token" {
					t.Errorf("token = %q, want %q", token, "reset-token")
				}
				if passwordHash != "hashed:newpassword" {
					t.Errorf("hash = %q, want the hasher output", passwordHash)
				}
				return user.User{ID: "u1", Email: "jane@example.com"}, nil
			},
		}
		svc := newTestService(repo, &plainHasher{})

		if _, err := svc.ResetPassword(t.Context(), "reset-token", "newpassword"); err != nil {
			t.Fatalf("ResetPassword() returned error: %v", err)
		}
	})

	t.Run("maps a stale token to ErrTokenInvalid", func(t *testing.T) {
		t.Parallel()

		repo := &stubRepository{
			resetPasswordByTokenFunc: func(_ context.Context, _, _ string) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
		}
		svc := newTestService(repo, &plainHasher{})

		if _, err := svc.ResetPassword(t.Context(), "stale", "newpassword"); !errors.Is(err, auth.ErrTokenInvalid) {
			t.Fatalf("ResetPassword() error = %v, want ErrTokenInvalid", err)
		}
	})
}

func TestService_CurrentUser(t *testing.T) {
	t.Parallel()

	repo := &stubRepository{
		findFunc: func(_ context.Context, userID string) (user.User, error) {
			return user.User{ID: userID, Email: "jane@example.com"}, nil
		},
	}
	svc := newTestService(repo, &plainHasher{})

	u, err := svc.CurrentUser(t.Context(), "u1")
	if err != nil {
		t.Fatalf("CurrentUser() returned error: %v", err)
	}
	if u.ID != "u1" {
		t.Errorf("user ID = %q, want %q", u.ID, "u1")
	}
}
