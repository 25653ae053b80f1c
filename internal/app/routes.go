package app

import (
	"net/http"

	"github.com/allandeluna/brainstash/internal/auth"
	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/content"
	"github.com/allandeluna/brainstash/internal/middleware"
	"github.com/allandeluna/brainstash/internal/platform/jwt"
	"github.com/allandeluna/brainstash/internal/platform/router"
	"github.com/allandeluna/brainstash/internal/platform/validation"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, signer jwt.Signer, cfg *config.Config) {
	maxBodySize := cfg.Server.MaxBodyBytes
	cookieName := cfg.Cookie.Name

	r.Group("/auth", func(gr router.Router) {
		// signup validation fails with 411, the other endpoints with 400
		gr.Post("/signup", handler.SignUp,
			middleware.DecodePayload[auth.SignUpRequest](maxBodySize),
			middleware.ValidateInput[auth.SignUpRequest](validator, http.StatusLengthRequired))
		gr.Post("/signin", handler.SignIn,
			middleware.DecodePayload[auth.SignInRequest](maxBodySize),
			middleware.ValidateInput[auth.SignInRequest](validator, http.StatusBadRequest))
		gr.Post("/signout", handler.SignOut)
		gr.Post("/verify", handler.VerifyEmail,
			middleware.DecodePayload[auth.VerifyEmailRequest](maxBodySize),
			middleware.ValidateInput[auth.VerifyEmailRequest](validator, http.StatusBadRequest))
		gr.Post("/forgot-password", handler.ForgotPassword,
			middleware.DecodePayload[auth.ForgotPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ForgotPasswordRequest](validator, http.StatusBadRequest))
		gr.Post("/reset-password/{token}", handler.ResetPassword,
			middleware.DecodePayload[auth.ResetPasswordRequest](maxBodySize),
			middleware.ValidateInput[auth.ResetPasswordRequest](validator, http.StatusBadRequest))
		gr.Get("/check", handler.CheckUser, auth.RequireSession(signer, cookieName))
	})
}

func mountContentRoutes(r router.Router, handler *content.Handler, validator validation.Validator, signer jwt.Signer, cfg *config.Config) {
	r.Group("/contents", func(gr router.Router) {
		gr.Get("/contents", handler.ListContents)
		gr.Post("/contents", handler.CreateContent,
			middleware.DecodePayload[content.CreateContentRequest](cfg.Server.MaxBodyBytes),
			middleware.ValidateInput[content.CreateContentRequest](validator, http.StatusBadRequest))
		gr.Delete("/contents/{id}", handler.DeleteContent)
	}, auth.RequireSession(signer, cfg.Cookie.Name))
}
