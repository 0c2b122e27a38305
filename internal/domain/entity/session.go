package entity

import (
	"github.com/invoicehq/invoicer-client/internal/domain/enum"
)

// AuthSession is the locally held view of the mailer session. Loading is true
// until the first session check settles.
type AuthSession struct {
	IsAuthenticated bool            `json:"is_authenticated"`
	UserEmail       string          `json:"user_email,omitempty"`
	UserName        string          `json:"user_name,omitempty"`
	UserAvatarURL   string          `json:"user_avatar_url,omitempty"`
	AuthMethod      enum.AuthMethod `json:"auth_method"`
	Loading         bool            `json:"loading"`
}

// NewAuthSession returns the initial, still-loading session state
func NewAuthSession() AuthSession {
	return AuthSession{
		AuthMethod: enum.AuthMethodUnknown,
		Loading:    true,
	}
}
