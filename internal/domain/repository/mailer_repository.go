package repository

import (
	"context"
)

// SessionStatus is the mailer session as reported by the backend
type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	Method        string `json:"method"`
}

// SessionGateway defines the collaborator interface for the mailer session
type SessionGateway interface {
	CheckSession(ctx context.Context) (*SessionStatus, error)
	Logout(ctx context.Context) error
	// AuthURL returns the absolute authorization path the login popup must
	// open; the rest of the flow is server driven.
	AuthURL() string
}

// VersionGateway reports the backend version
type VersionGateway interface {
	Version(ctx context.Context) (string, error)
}
