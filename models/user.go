package models

// UserProfile is the display data resolved by the identity directory.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}
