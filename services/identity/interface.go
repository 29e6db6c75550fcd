package identity

import (
	"context"

	"quadrafacil/models"
)

// Directory resolves user ids to display data. Implementations return an
// error for unknown ids; callers doing enrichment substitute Placeholder
// instead of failing their request.
type Directory interface {
	Resolve(ctx context.Context, userID string) (models.UserProfile, error)
}

// Placeholder is the profile substituted when a lookup fails.
func Placeholder(userID string) models.UserProfile {
	return models.UserProfile{ID: userID, DisplayName: "unknown user"}
}
