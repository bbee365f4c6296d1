package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/config"
)

// Clients bundles the Firebase Admin SDK handles used by the application.
// Built once at startup and injected into repositories and middleware;
// read-only for the lifetime of the process.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
}

// InitFirebase initializes the Firebase Admin SDK and returns the Auth and
// Firestore clients. Credentials are resolved in order: service account file
// path, base64-encoded service account JSON, then Application Default
// Credentials.
func InitFirebase(ctx context.Context, appConfig *config.Config) (*Clients, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("InitFirebase: appConfig cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case appConfig.GoogleApplicationCredentials != "":
		opts = append(opts, option.WithCredentialsFile(appConfig.GoogleApplicationCredentials))
	case appConfig.FirebaseServiceAccountJSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(appConfig.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	}
	// No explicit credentials: the SDK falls back to Application Default
	// Credentials, which is the normal setup on GCP runtimes.

	fbConfig := &firebase.Config{ProjectID: appConfig.FirebaseProjectID}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	return &Clients{App: app, Auth: authClient, Firestore: fsClient}, nil
}

// Close releases the Firestore client. The Auth client holds no connection
// state of its own.
func (c *Clients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}
