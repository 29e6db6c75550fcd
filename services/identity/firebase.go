package identity

import (
	"context"
	"fmt"

	"quadrafacil/config"
	"quadrafacil/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseDirectory resolves profiles from Firebase Auth user records.
type FirebaseDirectory struct {
	client *auth.Client
}

// NewFirebaseDirectory initializes the Firebase app and Auth client.
func NewFirebaseDirectory(ctx context.Context) (*FirebaseDirectory, error) {
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("identity: error initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity: error getting auth client: %w", err)
	}
	return &FirebaseDirectory{client: client}, nil
}

func (d *FirebaseDirectory) Resolve(ctx context.Context, userID string) (models.UserProfile, error) {
	rec, err := d.client.GetUser(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("identity: lookup for %s failed: %w", userID, err)
	}

	name := rec.DisplayName
	if name == "" {
		name = rec.Email
	}
	return models.UserProfile{
		ID:          userID,
		DisplayName: name,
		PhotoURL:    rec.PhotoURL,
	}, nil
}
