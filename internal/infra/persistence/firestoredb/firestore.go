// Package firestoredb contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestoredb

import (
	"context"
	"log/slog"

	"waffer/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names
const (
	PostsCollection          = "posts"
	CategoriesCollection     = "categories"
	UsersCollection          = "users"
	BookmarkEventsCollection = "bookmark_events"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client of the Firebase app
func New(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// reading a missing document is enough to prove connectivity and credentials
			_, err := client.Collection(CategoriesCollection).Doc("_ping").Get(ctx)
			if err != nil && !isNotFound(err) {
				return errors.Wrap(err, "failed to reach Firestore")
			}
			params.Logger.Info("Firestore client ready")

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
