package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/gettupp/backoffice/common"
)

// NewApp initializes the firebase admin app with the service account from env,
// or application default credentials when none is configured.
func NewApp(ctx context.Context) (*firebase.App, error) {
	return firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID}, common.ClientOptions()...)
}

// NewAuthClient returns the firebase auth client used to verify admin ID tokens.
func NewAuthClient(ctx context.Context) (*auth.Client, error) {
	app, err := NewApp(ctx)
	if err != nil {
		return nil, err
	}

	return app.Auth(ctx)
}
