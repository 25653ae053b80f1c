package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/pkg/security"
	"github.com/allandeluna/brainstash/internal/platform/email"
	"github.com/allandeluna/brainstash/internal/platform/hash"
	"github.com/allandeluna/brainstash/internal/user"
)

var _ AuthService = (*Service)(nil)

var (
	ErrUserExists = errors.New("auth service: user already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the response cannot reveal which part failed.
	ErrInvalidCredentials = errors.New("auth service: invalid email or password")
	ErrTokenInvalid       = errors.New("auth service: invalid or expired token")
)

const verificationCodeDigits = 6

// UserRepository is the store surface the auth flows need.
type UserRepository interface {
	Create(ctx context.Context, params user.CreateUserParams) (user.User, error)
	FindByEmail(ctx context.Context, email string) (user.User, error)
	Find(ctx context.Context, userID string) (user.User, error)
	RecordLogin(ctx context.Context, userID string) (user.User, error)
	VerifyByToken(ctx context.Context, token string) (user.User, error)
	SetResetToken(ctx context.Context, email, token string, expires time.Time) (user.User, error)
	ResetPasswordByToken(ctx context.Context, token, passwordHash string) (user.User, error)
}

type Providers struct {
	Hasher hash.Hasher
	Mailer email.Mailer
}

type Service struct {
	users     UserRepository
	hasher    hash.Hasher
	mailer    email.Mailer
	cfg       *config.Config
	clientURL string
}

func NewService(users UserRepository, provider *Providers, cfg *config.Config, clientURL string) *Service {
	return &Service{
		users:     users,
		hasher:    provider.Hasher,
		mailer:    provider.Mailer,
		cfg:       cfg,
		clientURL: clientURL,
	}
}

type SignUpParams struct {
	Email    string
	Password string
	Name     string
}

func (p SignUpParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
		slog.String("name", p.Name),
	)
}

// SignUp creates the user with a pending 6-digit verification pair and
// sends the code by email. The store's unique constraint backstops the
// duplicate pre-check against concurrent signups.
func (s *Service) SignUp(ctx context.Context, params SignUpParams) (user.User, error) {
	var u user.User
	normEmail := strings.ToLower(params.Email)

	_, err := s.users.FindByEmail(ctx, normEmail)
	if err == nil {
		return u, ErrUserExists
	}
	if !errors.Is(err, user.ErrNotFound) {
		return u, fmt.Errorf("find user by email: %w", err)
	}

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return u, fmt.Errorf("hash password: %w", err)
	}

	code, err := security.GenerateNumericCode(verificationCodeDigits)
	if err != nil {
		return u, fmt.Errorf("generate verification code: %w", err)
	}

	u, err = s.users.Create(ctx, user.CreateUserParams{
		Email:                normEmail,
		Name:                 params.Name,
		PasswordHash:         passwordHash,
		VerifiedToken:        code,
		VerifiedTokenExpires: time.Now().Add(s.cfg.Email.VerifyTTL.Duration),
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return u, ErrUserExists
		}
		return u, fmt.Errorf("create user: %w", err)
	}

	go s.sendVerificationEmail(u.Email, code)

	return u, nil
}

type SignInParams struct {
	Email    string
	Password string
}

func (p SignInParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

func (s *Service) SignIn(ctx context.Context, params SignInParams) (user.User, error) {
	var zero user.User

	u, err := s.users.FindByEmail(ctx, strings.ToLower(params.Email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return zero, ErrInvalidCredentials
		}
		return zero, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return zero, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return zero, ErrInvalidCredentials
	}

	u, err = s.users.RecordLogin(ctx, u.ID)
	if err != nil {
		return zero, fmt.Errorf("record login for user %s: %w", u.ID, err)
	}
	return u, nil
}

// VerifyEmail consumes a pending verification code. Wrong and expired
// codes are indistinguishable.
func (s *Service) VerifyEmail(ctx context.Context, token string) (user.User, error) {
	u, err := s.users.VerifyByToken(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return u, ErrTokenInvalid
		}
		return u, fmt.Errorf("verify user by token: %w", err)
	}
	return u, nil
}

// ForgotPassword attaches a fresh opaque reset token to the account and
// mails the reset link. A missing account surfaces as user.ErrNotFound;
// the handler deliberately reports it as such.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) (user.User, error) {
	token := uuid.NewString()
	expires := time.Now().Add(s.cfg.Email.ResetTTL.Duration)

	u, err := s.users.SetResetToken(ctx, strings.ToLower(emailAddr), token, expires)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return u, user.ErrNotFound
		}
		return u, fmt.Errorf("set reset token: %w", err)
	}

	resetURL := s.clientURL + "/reset-password?token=" + token
	go s.sendPasswordResetEmail(u.Email, resetURL)

	return u, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) (user.User, error) {
	var zero user.User

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return zero, fmt.Errorf("hash new password: %w", err)
	}

	u, err := s.users.ResetPasswordByToken(ctx, token, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return zero, ErrTokenInvalid
		}
		return zero, fmt.Errorf("reset password by token: %w", err)
	}

	go s.sendPasswordResetSuccessEmail(u.Email)

	return u, nil
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (user.User, error) {
	u, err := s.users.Find(ctx, userID)
	if err != nil {
		return u, fmt.Errorf("find user with id %s: %w", userID, err)
	}
	return u, nil
}

// Email sends are best-effort: the state mutation has already committed
// when they run, so a delivery failure is logged, never surfaced.

func (s *Service) sendVerificationEmail(to, code string) {
	data := map[string]string{"Code": code}
	if err := s.mailer.SendHTML([]string{to}, "Verify your email", "verification", data); err != nil {
		slog.Error("failed to send verification email", "reason", err)
	}
}

func (s *Service) sendPasswordResetEmail(to, resetURL string) {
	data := map[string]string{"ResetURL": resetURL}
	if err := s.mailer.SendHTML([]string{to}, "Reset your password", "reset_password", data); err != nil {
		slog.Error("failed to send password reset email", "reason", err)
	}
}

func (s *Service) sendPasswordResetSuccessEmail(to string) {
	if err := s.mailer.SendHTML([]string{to}, "Password Reset Successful", "reset_success", nil); err != nil {
		slog.Error("failed to send password reset confirmation", "reason", err)
	}
}
