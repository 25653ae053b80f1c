package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/pkg/message"
	"github.com/allandeluna/brainstash/internal/pkg/web"
	"github.com/allandeluna/brainstash/internal/platform/jwt"
	"github.com/allandeluna/brainstash/internal/user"
)

const maskChar = "*"

type AuthService interface {
	SignUp(ctx context.Context, params SignUpParams) (user.User, error)
	SignIn(ctx context.Context, params SignInParams) (user.User, error)
	VerifyEmail(ctx context.Context, token string) (user.User, error)
	ForgotPassword(ctx context.Context, email string) (user.User, error)
	ResetPassword(ctx context.Context, token, password string) (user.User, error)
	CurrentUser(ctx context.Context, userID string) (user.User, error)
}

type Handler struct {
	svc    AuthService
	signer jwt.Signer
	cfg    *config.Config
	secure bool
}

func NewHandler(svc AuthService, signer jwt.Signer, cfg *config.Config, secureCookies bool) *Handler {
	return &Handler{
		svc:    svc,
		signer: signer,
		cfg:    cfg,
		secure: secureCookies,
	}
}

// UserData is the projection of a user safe to return to its owner.
type UserData struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	IsVerified bool       `json:"isVerified"`
	LastLogin  *time.Time `json:"lastLogin"`
}

// UserTokenData additionally carries the pending token pairs. The
// signup, verify, and forgot-password responses echo them; sign-in,
// reset, and check do not.
type UserTokenData struct {
	UserData
	VerifiedToken        *string    `json:"verifiedToken,omitempty"`
	VerifiedTokenExpires *time.Time `json:"verifiedTokenExpires,omitempty"`
	ResetToken           *string    `json:"resetToken,omitempty"`
	ResetTokenExpires    *time.Time `json:"resetTokenExpires,omitempty"`
}

type UserResponse struct {
	web.Envelope
	User *UserData `json:"user"`
}

type UserTokenResponse struct {
	web.Envelope
	User *UserTokenData `json:"user"`
}

func newUserData(u user.User) *UserData {
	return &UserData{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
	}
}

func newUserTokenData(u user.User) *UserTokenData {
	return &UserTokenData{
		UserData:             *newUserData(u),
		VerifiedToken:        u.VerifiedToken,
		VerifiedTokenExpires: u.VerifiedTokenExpires,
		ResetToken:           u.ResetToken,
		ResetTokenExpires:    u.ResetTokenExpires,
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, userID string) error {
	token, err := h.signer.Sign(userID, h.cfg.JWT.TTL.Duration)
	if err != nil {
		return err
	}

	cookie := NewSessionCookie(h.cfg.Cookie.Name, token, h.cfg.Cookie.MaxAge.Duration, h.secure)
	http.SetCookie(w, cookie)
	return nil
}

type SignUpRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=8"`
	Name     string `json:"name,omitempty" validate:"required,min=2"`
}

func (r SignUpRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("name", r.Name),
	)
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[SignUpRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.RequiredFields, nil)
		return
	}

	params := SignUpParams{Email: req.Email, Password: req.Password, Name: req.Name}
	u, err := h.svc.SignUp(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			web.RespondForbidden(w, err, message.UserExists, nil)
			return
		}
		web.RespondBadRequest(w, err, message.ErrCreatingUser, nil)
		return
	}

	if err := h.setSessionCookie(w, u.ID); err != nil {
		web.RespondBadRequest(w, err, message.ErrCreatingUser, nil)
		return
	}

	web.Respond(w, http.StatusCreated, &UserTokenResponse{
		Envelope: web.NewEnvelope(message.UserCreated),
		User:     newUserTokenData(u),
	})
}

type SignInRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required"`
}

func (r SignInRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[SignInRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.RequiredFields, nil)
		return
	}

	u, err := h.svc.SignIn(r.Context(), SignInParams(req))
	if err != nil {
		// one message for unknown email and wrong password
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondBadRequest(w, err, message.InvalidLogin, nil)
			return
		}
		web.RespondBadRequest(w, err, message.ErrSigningIn, nil)
		return
	}

	if err := h.setSessionCookie(w, u.ID); err != nil {
		web.RespondBadRequest(w, err, message.ErrSigningIn, nil)
		return
	}

	web.Respond(w, http.StatusOK, &UserResponse{
		Envelope: web.NewEnvelope(message.SignedIn),
		User:     newUserData(u),
	})
}

// SignOut clears the session cookie. It succeeds whether or not a
// session was active.
func (h *Handler) SignOut(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, NewExpiredSessionCookie(h.cfg.Cookie.Name, h.secure))
	web.RespondMessage(w, http.StatusOK, message.SignedOut)
}

type VerifyEmailRequest struct {
	VerificationToken string `json:"verificationToken,omitempty" validate:"required,len=6"`
}

func (r VerifyEmailRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("verificationToken", maskChar))
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[VerifyEmailRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.RequiredFields, nil)
		return
	}

	u, err := h.svc.VerifyEmail(r.Context(), req.VerificationToken)
	if err != nil {
		if errors.Is(err, ErrTokenInvalid) {
			web.RespondBadRequest(w, err, message.InvalidVerifyToken, nil)
			return
		}
		web.RespondBadRequest(w, err, message.ErrVerifyingUser, nil)
		return
	}

	web.Respond(w, http.StatusOK, &UserTokenResponse{
		Envelope: web.NewEnvelope(message.EmailVerified),
		User:     newUserTokenData(u),
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email,omitempty" validate:"required,email"`
}

func (r ForgotPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("email", maskChar))
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ForgotPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.RequiredFields, nil)
		return
	}

	u, err := h.svc.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		// unlike sign-in, this endpoint reports an unknown email as such
		if errors.Is(err, user.ErrNotFound) {
			web.RespondBadRequest(w, err, message.InvalidEmail, nil)
			return
		}
		web.RespondBadRequest(w, err, message.ErrSendingReset, nil)
		return
	}

	web.Respond(w, http.StatusOK, &UserTokenResponse{
		Envelope: web.NewEnvelope(message.ResetEmailSent),
		User:     newUserTokenData(u),
	})
}

type ResetPasswordRequest struct {
	Password string `json:"password,omitempty" validate:"required,min=8"`
}

func (r ResetPasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("password", maskChar))
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		web.RespondBadRequest(w, errors.New("missing reset token"), message.RequiredFields, nil)
		return
	}

	req, err := web.ParamsFromContext[ResetPasswordRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.RequiredFields, nil)
		return
	}

	u, err := h.svc.ResetPassword(r.Context(), token, req.Password)
	if err != nil {
		if errors.Is(err, ErrTokenInvalid) {
			web.RespondBadRequest(w, err, message.InvalidResetToken, nil)
			return
		}
		web.RespondBadRequest(w, err, message.ErrResetPassword, nil)
		return
	}

	web.Respond(w, http.StatusOK, &UserResponse{
		Envelope: web.NewEnvelope(message.PasswordReset),
		User:     newUserData(u),
	})
}

func (h *Handler) CheckUser(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	u, err := h.svc.CurrentUser(r.Context(), userID)
	if err != nil {
		web.RespondBadRequest(w, err, message.ErrFetchingUser, nil)
		return
	}

	web.Respond(w, http.StatusOK, &UserResponse{
		Envelope: web.NewEnvelope(message.UserFetched),
		User:     newUserData(u),
	})
}
