package app

import (
	"fmt"

	"github.com/allandeluna/brainstash/internal/config"
	"github.com/allandeluna/brainstash/internal/platform/email"
	"github.com/allandeluna/brainstash/internal/platform/hash"
	"github.com/allandeluna/brainstash/internal/platform/jwt"
	"github.com/allandeluna/brainstash/internal/platform/router"
	"github.com/allandeluna/brainstash/internal/platform/validation"
)

// Provider bundles the infrastructure collaborators handed to the app.
type Provider struct {
	Signer    jwt.Signer
	Mailer    email.Mailer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
}

func newProvider(cfg *config.Config, envCfg *config.Env) (*Provider, error) {
	mailer, err := email.NewSMTPMailer(&envCfg.SMTP, cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("new smtp mailer: %w", err)
	}

	return &Provider{
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, envCfg.Key),
		Mailer:    mailer,
		Validator: validation.NewPlaygroundValidator(),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, envCfg.Key),
		Router:    router.NewGoexpressRouter(),
	}, nil
}
