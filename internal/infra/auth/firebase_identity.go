package auth

import (
	"context"
	"log/slog"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// tokenVerifier is the part of the Firebase Auth client used here
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseIdentity verifies Firebase ID tokens issued to signed-in web users
type firebaseIdentity struct {
	verifier tokenVerifier
	logger   *slog.Logger
}

// NewFirebaseIdentity creates an identity provider backed by Firebase Auth
func NewFirebaseIdentity(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.IdentityProvider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseIdentity{verifier: client, logger: logger}, nil
}

// Identify implements service.IdentityProvider
func (f *firebaseIdentity) Identify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := f.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		f.logger.Debug("ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no email claim")
	}
	name, _ := token.Claims["name"].(string)

	return &entity.Identity{UID: token.UID, Email: email, Name: name}, nil
}
